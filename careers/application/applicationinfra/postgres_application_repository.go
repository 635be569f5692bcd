package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careersync/careers/application"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

var _ application.Repository = (*PostgresApplicationRepository)(nil)

// NewPostgresApplicationRepository creates a new PostgreSQL application repository
func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{
		db: db,
	}
}

// ============================================================================
// Database Models
// ============================================================================

const applicationColumns = `
	id, user_id, job_title, company_name, location, salary, job_type, status,
	applied_date, notes, job_url, contact_person, contact_email,
	interview_date, follow_up_date, created_at, updated_at`

type applicationModel struct {
	ID            string     `db:"id"`
	UserID        string     `db:"user_id"`
	JobTitle      string     `db:"job_title"`
	CompanyName   string     `db:"company_name"`
	Location      *string    `db:"location"`
	Salary        *string    `db:"salary"`
	JobType       string     `db:"job_type"`
	Status        string     `db:"status"`
	AppliedDate   time.Time  `db:"applied_date"`
	Notes         *string    `db:"notes"`
	JobURL        *string    `db:"job_url"`
	ContactPerson *string    `db:"contact_person"`
	ContactEmail  *string    `db:"contact_email"`
	InterviewDate *time.Time `db:"interview_date"`
	FollowUpDate  *time.Time `db:"follow_up_date"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// toEntity converts database model to domain entity
func (m *applicationModel) toEntity() *application.Application {
	return &application.Application{
		ID:            kernel.ApplicationID(m.ID),
		UserID:        kernel.UserID(m.UserID),
		JobTitle:      m.JobTitle,
		CompanyName:   m.CompanyName,
		Location:      m.Location,
		Salary:        m.Salary,
		JobType:       application.JobType(m.JobType),
		Status:        application.Status(m.Status),
		AppliedDate:   kernel.NewDate(m.AppliedDate),
		Notes:         m.Notes,
		JobURL:        m.JobURL,
		ContactPerson: m.ContactPerson,
		ContactEmail:  m.ContactEmail,
		InterviewDate: kernel.DateFromPtr(m.InterviewDate),
		FollowUpDate:  kernel.DateFromPtr(m.FollowUpDate),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromEntity converts domain entity to database model
func fromEntity(app *application.Application) *applicationModel {
	return &applicationModel{
		ID:            string(app.ID),
		UserID:        string(app.UserID),
		JobTitle:      app.JobTitle,
		CompanyName:   app.CompanyName,
		Location:      app.Location,
		Salary:        app.Salary,
		JobType:       string(app.JobType),
		Status:        string(app.Status),
		AppliedDate:   app.AppliedDate.Time,
		Notes:         app.Notes,
		JobURL:        app.JobURL,
		ContactPerson: app.ContactPerson,
		ContactEmail:  app.ContactEmail,
		InterviewDate: app.InterviewDate.TimePtr(),
		FollowUpDate:  app.FollowUpDate.TimePtr(),
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}

func toEntities(models []applicationModel) []*application.Application {
	out := make([]*application.Application, 0, len(models))
	for i := range models {
		out = append(out, models[i].toEntity())
	}
	return out
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create creates a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		INSERT INTO job_applications (` + applicationColumns + `
		) VALUES (
			:id, :user_id, :job_title, :company_name, :location, :salary, :job_type, :status,
			:applied_date, :notes, :job_url, :contact_person, :contact_email,
			:interview_date, :follow_up_date, :created_at, :updated_at
		)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// Update replaces an application owned by app.UserID
func (r *PostgresApplicationRepository) Update(ctx context.Context, app *application.Application) error {
	model := fromEntity(app)

	query := `
		UPDATE job_applications SET
			job_title = :job_title,
			company_name = :company_name,
			location = :location,
			salary = :salary,
			job_type = :job_type,
			status = :status,
			applied_date = :applied_date,
			notes = :notes,
			job_url = :job_url,
			contact_person = :contact_person,
			contact_email = :contact_email,
			interview_date = :interview_date,
			follow_up_date = :follow_up_date,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// Delete removes an application owned by the user
func (r *PostgresApplicationRepository) Delete(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID) error {
	query := `DELETE FROM job_applications WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, string(id), string(userID))
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return application.ErrApplicationNotFound()
	}

	return nil
}

// GetByID retrieves an application owned by the user
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE id = $1 AND user_id = $2
	`

	var model applicationModel
	if err := r.db.GetContext(ctx, &model, query, string(id), string(userID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application by id: %w", err)
	}

	return model.toEntity(), nil
}

// ListByUser returns the user's applications, newest first
func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]*application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, string(userID)); err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return toEntities(models), nil
}

// ListAppliedSince returns applications applied on or after since, oldest first
func (r *PostgresApplicationRepository) ListAppliedSince(ctx context.Context, userID kernel.UserID, since kernel.Date) ([]*application.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM job_applications
		WHERE user_id = $1 AND applied_date >= $2
		ORDER BY applied_date ASC
	`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, string(userID), since.String()); err != nil {
		return nil, fmt.Errorf("failed to list applications since %s: %w", since, err)
	}

	return toEntities(models), nil
}
