package applicationinfra

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Abraxas-365/careersync/careers/application"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "user_id", "job_title", "company_name", "location", "salary", "job_type", "status",
	"applied_date", "notes", "job_url", "contact_person", "contact_email",
	"interview_date", "follow_up_date", "created_at", "updated_at",
}

func newRepo(t *testing.T) (*PostgresApplicationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresApplicationRepository(sqlx.NewDb(db, "postgres")), mock
}

func sampleRow(rows *sqlmock.Rows, id, status string, applied time.Time) *sqlmock.Rows {
	created := time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	interview := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(
		id, "user-1", "Engineer", "Acme", "Remote", nil, "full-time", status,
		applied, nil, "https://acme.example/jobs/1", nil, "hr@acme.example",
		interview, nil, created, created,
	)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	location := "Lima"

	app := &application.Application{
		ID:          "app-1",
		UserID:      "user-1",
		JobTitle:    "Engineer",
		CompanyName: "Acme",
		Location:    &location,
		JobType:     application.JobTypeFullTime,
		Status:      application.StatusApplied,
		AppliedDate: kernel.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO job_applications")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), app))
}

func TestCreateError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO job_applications")).
		WillReturnError(errors.New("boom"))

	err := repo.Create(context.Background(), &application.Application{ID: "x", UserID: "u"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create application")
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  errx.Code
	}{
		{name: "updated", affected: 1},
		{name: "missing row", affected: 0, wantErr: application.CodeApplicationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectExec(regexp.QuoteMeta("UPDATE job_applications SET")).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Update(context.Background(), &application.Application{ID: "app-1", UserID: "user-1"})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errx.IsCode(err, tt.wantErr))
		})
	}
}

func TestDelete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM job_applications WHERE id = $1 AND user_id = $2")).
		WithArgs("app-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM job_applications")).
		WithArgs("app-1", "user-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "user-1", "app-1"))

	err := repo.Delete(context.Background(), "user-2", "app-1")
	assert.True(t, errx.IsCode(err, application.CodeApplicationNotFound))
}

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)
	applied := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM job_applications")).
		WithArgs("app-1", "user-1").
		WillReturnRows(sampleRow(sqlmock.NewRows(columns), "app-1", "interview", applied))

	got, err := repo.GetByID(context.Background(), "user-1", "app-1")
	require.NoError(t, err)
	assert.Equal(t, kernel.ApplicationID("app-1"), got.ID)
	assert.Equal(t, application.StatusInterview, got.Status)
	assert.Equal(t, "2024-03-01", got.AppliedDate.String())
	require.NotNil(t, got.InterviewDate)
	assert.Equal(t, "2024-03-12", got.InterviewDate.String())
	assert.Nil(t, got.FollowUpDate)
	assert.Nil(t, got.Salary)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Remote", *got.Location)
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM job_applications")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "user-1", "missing")
	assert.True(t, errx.IsCode(err, application.CodeApplicationNotFound))
}

func TestListByUser(t *testing.T) {
	repo, mock := newRepo(t)
	applied := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(columns)
	sampleRow(rows, "app-2", "offer", applied)
	sampleRow(rows, "app-1", "ghosted", applied)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, kernel.ApplicationID("app-2"), got[0].ID)
	assert.Equal(t, application.Status("ghosted"), got[1].Status)
}

func TestListByUserEmpty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM job_applications")).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListAppliedSince(t *testing.T) {
	repo, mock := newRepo(t)
	since := kernel.NewDate(time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(regexp.QuoteMeta("applied_date >= $2")).
		WithArgs("user-1", "2024-02-15").
		WillReturnRows(sampleRow(sqlmock.NewRows(columns), "app-1", "applied", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	got, err := repo.ListAppliedSince(context.Background(), "user-1", since)
	require.NoError(t, err)
	require.Len(t, got, 1)
}
