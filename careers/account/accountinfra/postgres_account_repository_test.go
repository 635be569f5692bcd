package accountinfra

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/Abraxas-365/careersync/careers/account"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(t *testing.T) (*PostgresAccountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresAccountRepository(sqlx.NewDb(db, "postgres")), mock
}

func TestGetProfile(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_profiles")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "phone", "location", "bio", "updated_at"}).
			AddRow("user-1", "Ana", "ana@example.com", "", "Lima", "Go dev", now))

	p, err := repo.GetProfile(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, now, *p.UpdatedAt)
}

func TestGetMissingRowsMapToNotFound(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("FROM user_profiles")).WithArgs("u").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_api_keys")).WithArgs("u").WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("FROM user_notification_settings")).WithArgs("u").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(ctx, "u")
	assert.True(t, errx.IsCode(err, account.CodeProfileNotFound))
	_, err = repo.GetAPIKeys(ctx, "u")
	assert.True(t, errx.IsCode(err, account.CodeAPIKeysNotFound))
	_, err = repo.GetNotificationSettings(ctx, "u")
	assert.True(t, errx.IsCode(err, account.CodeNotificationsNotFound))
}

func TestUpsertAPIKeys(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user_api_keys")).
		WithArgs("user-1", "v1:sealed", "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertAPIKeys(context.Background(), &account.APIKeys{
		UserID:    "user-1",
		GeminiKey: "v1:sealed",
		UpdatedAt: now,
	})
	require.NoError(t, err)
}

func TestUpsertNotificationSettings(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (user_id) DO UPDATE SET")).
		WithArgs("user-1", false, true, true, false, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertNotificationSettings(context.Background(), &account.NotificationSettings{
		UserID:            "user-1",
		PushNotifications: true,
		JobAlerts:         true,
		UpdatedAt:         &now,
	})
	require.NoError(t, err)
}
