package project

import (
	"github.com/epitome-prod/callsheet-backend-go/internal/domain/callsheet"
	"github.com/epitome-prod/callsheet-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	UserID            string  `json:"-"`
	JobName           string  `json:"job_name"`
	JobNumber         *string `json:"job_number"`
	Client            *string `json:"client"`
	ProductionCompany *string `json:"production_company"`
	ShootStartDate    *string `json:"shoot_start_date"`
	ShootEndDate      *string `json:"shoot_end_date"`
}

func (r *CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobName) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_name",
			Message: "job_name is required",
		})
	}
	if r.ShootStartDate != nil {
		if _, ok := validator.IsValidDate(*r.ShootStartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shoot_start_date",
				Message: "shoot_start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.ShootEndDate != nil {
		if _, ok := validator.IsValidDate(*r.ShootEndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "shoot_end_date",
				Message: "shoot_end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProjectRequest struct {
	ID                string  `json:"-"`
	UserID            string  `json:"-"`
	JobName           *string `json:"job_name"`
	JobNumber         *string `json:"job_number"`
	Client            *string `json:"client"`
	ProductionCompany *string `json:"production_company"`
}

type ProductionInfoInput struct {
	JobName           string  `json:"job_name"`
	JobNumber         *string `json:"job_number"`
	Client            *string `json:"client"`
	ProductionCompany *string `json:"production_company"`
}

type LocationInput struct {
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	ContactName  *string `json:"contact_name"`
	ContactPhone *string `json:"contact_phone"`
	ParkingNotes *string `json:"parking_notes"`
}

type ScheduleDayInput struct {
	DayNumber       int    `json:"day_number"`
	Date            string `json:"date"`
	GeneralCrewCall string `json:"general_crew_call"`
	ProductionCall  string `json:"production_call"`
	BreakfastCall   string `json:"breakfast_call"`
	TalentCall      string `json:"talent_call"`
}

// GenerateRequest is the full extraction payload for one production: project
// header, locations, one entry per shoot day and the raw crew roster. The
// synthesis core runs once per schedule day.
type GenerateRequest struct {
	UserID         string                      `json:"-"`
	ProductionInfo ProductionInfoInput         `json:"production_info"`
	Locations      []LocationInput             `json:"locations"`
	ScheduleDays   []ScheduleDayInput          `json:"schedule_days"`
	Departments    []callsheet.DepartmentInput `json:"departments"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ProductionInfo.JobName) {
		errs = append(errs, validator.ValidationError{
			Field:   "production_info.job_name",
			Message: "job_name is required",
		})
	}
	for i, day := range r.ScheduleDays {
		if day.Date == "" || day.Date == "TBD" {
			continue
		}
		if _, ok := validator.IsValidDate(day.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "schedule_days[" + validator.Itoa(i) + "].date",
				Message: "date must be in YYYY-MM-DD format or TBD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProjectResponse struct {
	ID                string  `json:"id"`
	JobName           string  `json:"job_name"`
	JobNumber         *string `json:"job_number,omitempty"`
	Client            *string `json:"client,omitempty"`
	ProductionCompany *string `json:"production_company,omitempty"`
	ShootStartDate    *string `json:"shoot_start_date,omitempty"`
	ShootEndDate      *string `json:"shoot_end_date,omitempty"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type LocationResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Address          *string  `json:"address,omitempty"`
	FormattedAddress *string  `json:"formatted_address,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	ContactName      *string  `json:"contact_name,omitempty"`
	ContactPhone     *string  `json:"contact_phone,omitempty"`
	ParkingNotes     *string  `json:"parking_notes,omitempty"`
}

type GenerateResponse struct {
	Project    ProjectResponse               `json:"project"`
	Locations  []LocationResponse            `json:"locations"`
	CallSheets []callsheet.CallSheetResponse `json:"call_sheets"`
	DaySheets  []callsheet.DaySheetResponse  `json:"day_sheets"`
}
