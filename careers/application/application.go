package application

import (
	"slices"
	"time"

	"github.com/Abraxas-365/careersync/pkg/kernel"
)

// Status represents where an application stands in the hiring pipeline
type Status string

const (
	StatusApplied   Status = "applied"   // Submitted, no answer yet
	StatusInterview Status = "interview" // Interviewing
	StatusOffer     Status = "offer"     // Offer received
	StatusRejected  Status = "rejected"  // Rejected by the company
	StatusWithdrawn Status = "withdrawn" // Withdrawn by the user
)

// Statuses lists the known statuses in display order
var Statuses = []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn}

var statusLabels = map[Status]string{
	StatusApplied:   "Applied",
	StatusInterview: "Interview",
	StatusOffer:     "Offer",
	StatusRejected:  "Rejected",
	StatusWithdrawn: "Withdrawn",
}

var statusColors = map[Status]string{
	StatusApplied:   "#3B82F6",
	StatusInterview: "#F59E0B",
	StatusOffer:     "#10B981",
	StatusRejected:  "#EF4444",
	StatusWithdrawn: "#6B7280",
}

func (s Status) IsValid() bool {
	return slices.Contains(Statuses, s)
}

// Label returns the dashboard name of the status
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Color returns the chart color of the status
func (s Status) Color() string {
	return statusColors[s]
}

// JobType represents the kind of position applied to
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeFreelance  JobType = "freelance"
	JobTypeRemote     JobType = "remote"
)

// Application is a job application tracked by a user
type Application struct {
	ID            kernel.ApplicationID `json:"id"`
	UserID        kernel.UserID        `json:"userId"`
	JobTitle      string               `json:"jobTitle"`
	CompanyName   string               `json:"companyName"`
	Location      *string              `json:"location"`
	Salary        *string              `json:"salary"`
	JobType       JobType              `json:"jobType"`
	Status        Status               `json:"status"`
	AppliedDate   kernel.Date          `json:"appliedDate"`
	Notes         *string              `json:"notes"`
	JobURL        *string              `json:"jobUrl"`
	ContactPerson *string              `json:"contactPerson"`
	ContactEmail  *string              `json:"contactEmail"`
	InterviewDate *kernel.Date         `json:"interviewDate"`
	FollowUpDate  *kernel.Date         `json:"followUpDate"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// HasResponse reports whether the company answered in any way
func (a *Application) HasResponse() bool {
	return a.Status == StatusInterview || a.Status == StatusOffer || a.Status == StatusRejected
}

// ReachedInterview reports whether the application got at least to the interview stage
func (a *Application) ReachedInterview() bool {
	return a.Status == StatusInterview || a.Status == StatusOffer
}

func (a *Application) IsOffer() bool {
	return a.Status == StatusOffer
}

// ResponseDays returns the days between applying and the interview.
// ok is false when no interview is recorded or it predates the application.
func (a *Application) ResponseDays() (days int, ok bool) {
	if a.InterviewDate == nil || a.InterviewDate.IsZero() || a.AppliedDate.IsZero() {
		return 0, false
	}
	if a.InterviewDate.Before(a.AppliedDate.Time) {
		return 0, false
	}
	return a.AppliedDate.DaysUntil(*a.InterviewDate), true
}
