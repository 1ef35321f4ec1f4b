package entities

import "time"

const DateLayout = "2006-01-02"

// Job is a scheduled visit. CustomerID and EmployeeID are the references;
// the names are kept for display only.
type Job struct {
	ID           string
	CustomerID   string
	CustomerName string
	Date         time.Time
	Time         string
	EmployeeID   string
	EmployeeName string
	Address      string
	ServiceType  string
	Price        float64
	Status       JobStatus
	Completed    bool
	Notes        string
	CheckInTime  time.Time
	CheckOutTime time.Time
	Photos       string
}

func (j Job) DateKey() string {
	if j.Date.IsZero() {
		return ""
	}
	return j.Date.Format(DateLayout)
}
