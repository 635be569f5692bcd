package application

import (
	"strings"

	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/validatex"
)

// ApplicationRequest - DTO for creating or replacing an application
type ApplicationRequest struct {
	JobTitle      string      `json:"jobTitle" validate:"max=255"`
	CompanyName   string      `json:"companyName" validate:"max=255"`
	Location      string      `json:"location"`
	Salary        string      `json:"salary"`
	JobType       JobType     `json:"jobType" validate:"omitempty,oneof=full-time part-time contract internship freelance remote"`
	Status        Status      `json:"status" validate:"omitempty,oneof=applied interview offer rejected withdrawn"`
	AppliedDate   kernel.Date `json:"appliedDate"`
	Notes         string      `json:"notes"`
	JobURL        string      `json:"jobUrl" validate:"omitempty,url"`
	ContactPerson string      `json:"contactPerson"`
	ContactEmail  string      `json:"contactEmail" validate:"omitempty,email"`
	InterviewDate kernel.Date `json:"interviewDate"`
	FollowUpDate  kernel.Date `json:"followUpDate"`
}

// Validate checks the required fields first so the client sees the familiar message
func (r *ApplicationRequest) Validate() error {
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.JobURL = strings.TrimSpace(r.JobURL)
	r.ContactEmail = strings.TrimSpace(r.ContactEmail)

	if r.JobTitle == "" || r.CompanyName == "" {
		return ErrRequiredFields()
	}
	return validatex.Struct(r)
}

// ApplyTo copies the request onto app, filling defaults for omitted fields.
// A missing appliedDate keeps the current value when app already has one.
func (r *ApplicationRequest) ApplyTo(app *Application) {
	app.JobTitle = r.JobTitle
	app.CompanyName = r.CompanyName
	app.Location = optional(r.Location)
	app.Salary = optional(r.Salary)
	app.Notes = optional(r.Notes)
	app.JobURL = optional(r.JobURL)
	app.ContactPerson = optional(r.ContactPerson)
	app.ContactEmail = optional(r.ContactEmail)
	app.InterviewDate = optionalDate(r.InterviewDate)
	app.FollowUpDate = optionalDate(r.FollowUpDate)

	app.JobType = r.JobType
	if app.JobType == "" {
		app.JobType = JobTypeFullTime
	}
	app.Status = r.Status
	if app.Status == "" {
		app.Status = StatusApplied
	}

	switch {
	case !r.AppliedDate.IsZero():
		app.AppliedDate = r.AppliedDate
	case app.AppliedDate.IsZero():
		app.AppliedDate = kernel.Today()
	}
}

// ListApplicationsResponse - DTO for GET /api/jobs
type ListApplicationsResponse struct {
	Applications []*Application `json:"applications"`
}

// ApplicationResponse - DTO wrapping a single application
type ApplicationResponse struct {
	Application *Application `json:"application"`
}

// MessageResponse - DTO for plain confirmations
type MessageResponse struct {
	Message string `json:"message"`
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func optionalDate(d kernel.Date) *kernel.Date {
	if d.IsZero() {
		return nil
	}
	return &d
}
