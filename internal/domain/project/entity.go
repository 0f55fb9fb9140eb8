package project

import "time"

type Project struct {
	ID                string
	UserID            string
	JobName           string
	JobNumber         *string
	Client            *string
	ProductionCompany *string
	ShootStartDate    *time.Time
	ShootEndDate      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type Location struct {
	ID               string
	ProjectID        string
	Name             string
	Address          *string
	FormattedAddress *string
	Latitude         *float64
	Longitude        *float64
	ContactName      *string
	ContactPhone     *string
	ParkingNotes     *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
