package entities

import "time"

// Activity is one line of the Activity_Log sheet.
type Activity struct {
	Timestamp   time.Time
	Action      string
	Description string
	User        string
	IPAddress   string
}
