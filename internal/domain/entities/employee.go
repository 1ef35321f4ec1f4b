package entities

import "time"

// Employee is a field worker with portal access. PasswordHash holds a bcrypt
// hash; rows created by older tooling may still carry a hex SHA-256 digest.
type Employee struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Username     string
	PasswordHash string
	HireDate     time.Time
	Active       bool
	HourlyRate   float64
	ColorCode    string
	LastLogin    time.Time
}
