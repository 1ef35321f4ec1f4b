package entities

import "time"

type Customer struct {
	ID                  string
	Name                string
	Email               string
	Phone               string
	Address             string
	BusinessType        string
	SquareFeet          float64
	ServiceFrequency    string
	AddedDate           time.Time
	Status              CustomerStatus
	SpecialInstructions string
	PreferredDay        string
	PreferredTime       string
}
