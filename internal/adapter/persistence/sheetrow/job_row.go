package sheetrow

import (
	"fmt"

	"github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"
)

const JobsTable = "Jobs"

// JobHeader keeps the legacy column order; the id references were added at
// the end so existing sheets only grow.
var JobHeader = []string{
	"ID", "Customer_Name", "Date", "Time", "Employee", "Address", "Service_Type",
	"Price", "Status", "Completed", "Notes", "Check_In_Time", "Check_Out_Time",
	"Photos", "Customer_ID", "Employee_ID",
}

func EncodeJob(j entities.Job) ([]string, error) {
	row := []string{
		j.ID,
		j.CustomerName,
		j.DateKey(),
		j.Time,
		j.EmployeeName,
		j.Address,
		j.ServiceType,
		formatMoney(j.Price),
		string(j.Status),
		entities.YesNo(j.Completed),
		j.Notes,
		formatTime(j.CheckInTime),
		formatTime(j.CheckOutTime),
		j.Photos,
		j.CustomerID,
		j.EmployeeID,
	}
	return row, CheckWidth(JobsTable, row, len(JobHeader))
}

func DecodeJob(values []string) (entities.Job, error) {
	d := decoder{values: values, idx: indexOf(JobHeader)}
	j := entities.Job{
		ID:           d.str("ID"),
		CustomerName: d.str("Customer_Name"),
		Date:         d.ts("Date"),
		Time:         d.str("Time"),
		EmployeeName: d.str("Employee"),
		Address:      d.str("Address"),
		ServiceType:  d.str("Service_Type"),
		Price:        d.num("Price"),
		Completed:    d.yesNo("Completed"),
		Notes:        d.str("Notes"),
		CheckInTime:  d.ts("Check_In_Time"),
		CheckOutTime: d.ts("Check_Out_Time"),
		Photos:       d.str("Photos"),
		CustomerID:   d.str("Customer_ID"),
		EmployeeID:   d.str("Employee_ID"),
	}
	j.Status = entities.JobStatusScheduled
	if raw := d.str("Status"); raw != "" {
		s, err := entities.ParseJobStatus(raw)
		d.fail(err)
		j.Status = s
	}
	if d.err != nil {
		return entities.Job{}, fmt.Errorf("decode job %s: %w", j.ID, d.err)
	}
	return j, nil
}
