package sheetrow

import "github.com/Cleaning-Company-dex/cleaning-company-web/internal/domain/entities"

const ActivityTable = "Activity_Log"

var ActivityHeader = []string{"Timestamp", "Action", "Description", "User", "IP_Address"}

func EncodeActivity(a entities.Activity) ([]string, error) {
	row := []string{formatTime(a.Timestamp), a.Action, a.Description, a.User, a.IPAddress}
	return row, CheckWidth(ActivityTable, row, len(ActivityHeader))
}
