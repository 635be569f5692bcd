package accountinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careersync/careers/account"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresAccountRepository implements account.Repository using PostgreSQL
type PostgresAccountRepository struct {
	db *sqlx.DB
}

var _ account.Repository = (*PostgresAccountRepository)(nil)

// NewPostgresAccountRepository creates a new PostgreSQL account repository
func NewPostgresAccountRepository(db *sqlx.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

// ============================================================================
// Database Models
// ============================================================================

type profileModel struct {
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Location  string    `db:"location"`
	Bio       string    `db:"bio"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m *profileModel) toEntity() *account.Profile {
	updated := m.UpdatedAt
	return &account.Profile{
		UserID:    kernel.UserID(m.UserID),
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Location:  m.Location,
		Bio:       m.Bio,
		UpdatedAt: &updated,
	}
}

type apiKeysModel struct {
	UserID    string    `db:"user_id"`
	GeminiKey string    `db:"gemini_key"`
	OpenAIKey string    `db:"openai_key"`
	UpdatedAt time.Time `db:"updated_at"`
}

type notificationsModel struct {
	UserID             string    `db:"user_id"`
	EmailNotifications bool      `db:"email_notifications"`
	PushNotifications  bool      `db:"push_notifications"`
	JobAlerts          bool      `db:"job_alerts"`
	WeeklyReports      bool      `db:"weekly_reports"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (m *notificationsModel) toEntity() *account.NotificationSettings {
	updated := m.UpdatedAt
	return &account.NotificationSettings{
		UserID:             kernel.UserID(m.UserID),
		EmailNotifications: m.EmailNotifications,
		PushNotifications:  m.PushNotifications,
		JobAlerts:          m.JobAlerts,
		WeeklyReports:      m.WeeklyReports,
		UpdatedAt:          &updated,
	}
}

func updatedAt(t *time.Time) time.Time {
	if t == nil {
		return time.Now().UTC()
	}
	return *t
}

// ============================================================================
// Profile
// ============================================================================

func (r *PostgresAccountRepository) GetProfile(ctx context.Context, userID kernel.UserID) (*account.Profile, error) {
	query := `
		SELECT user_id, name, email, phone, location, bio, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var model profileModel
	if err := r.db.GetContext(ctx, &model, query, string(userID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrProfileNotFound()
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostgresAccountRepository) UpsertProfile(ctx context.Context, p *account.Profile) error {
	query := `
		INSERT INTO user_profiles (user_id, name, email, phone, location, bio, updated_at)
		VALUES (:user_id, :name, :email, :phone, :location, :bio, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			location = EXCLUDED.location,
			bio = EXCLUDED.bio,
			updated_at = EXCLUDED.updated_at
	`

	model := profileModel{
		UserID:    string(p.UserID),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Location:  p.Location,
		Bio:       p.Bio,
		UpdatedAt: updatedAt(p.UpdatedAt),
	}
	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// ============================================================================
// API keys
// ============================================================================

func (r *PostgresAccountRepository) GetAPIKeys(ctx context.Context, userID kernel.UserID) (*account.APIKeys, error) {
	query := `
		SELECT user_id, gemini_key, openai_key, updated_at
		FROM user_api_keys
		WHERE user_id = $1
	`

	var model apiKeysModel
	if err := r.db.GetContext(ctx, &model, query, string(userID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrAPIKeysNotFound()
		}
		return nil, fmt.Errorf("failed to get api keys: %w", err)
	}

	return &account.APIKeys{
		UserID:    kernel.UserID(model.UserID),
		GeminiKey: model.GeminiKey,
		OpenAIKey: model.OpenAIKey,
		UpdatedAt: model.UpdatedAt,
	}, nil
}

func (r *PostgresAccountRepository) UpsertAPIKeys(ctx context.Context, keys *account.APIKeys) error {
	query := `
		INSERT INTO user_api_keys (user_id, gemini_key, openai_key, updated_at)
		VALUES (:user_id, :gemini_key, :openai_key, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			gemini_key = EXCLUDED.gemini_key,
			openai_key = EXCLUDED.openai_key,
			updated_at = EXCLUDED.updated_at
	`

	model := apiKeysModel{
		UserID:    string(keys.UserID),
		GeminiKey: keys.GeminiKey,
		OpenAIKey: keys.OpenAIKey,
		UpdatedAt: keys.UpdatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to upsert api keys: %w", err)
	}
	return nil
}

// ============================================================================
// Notifications
// ============================================================================

func (r *PostgresAccountRepository) GetNotificationSettings(ctx context.Context, userID kernel.UserID) (*account.NotificationSettings, error) {
	query := `
		SELECT user_id, email_notifications, push_notifications, job_alerts, weekly_reports, updated_at
		FROM user_notification_settings
		WHERE user_id = $1
	`

	var model notificationsModel
	if err := r.db.GetContext(ctx, &model, query, string(userID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotificationsNotFound()
		}
		return nil, fmt.Errorf("failed to get notification settings: %w", err)
	}
	return model.toEntity(), nil
}

func (r *PostgresAccountRepository) UpsertNotificationSettings(ctx context.Context, s *account.NotificationSettings) error {
	query := `
		INSERT INTO user_notification_settings
			(user_id, email_notifications, push_notifications, job_alerts, weekly_reports, updated_at)
		VALUES
			(:user_id, :email_notifications, :push_notifications, :job_alerts, :weekly_reports, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			email_notifications = EXCLUDED.email_notifications,
			push_notifications = EXCLUDED.push_notifications,
			job_alerts = EXCLUDED.job_alerts,
			weekly_reports = EXCLUDED.weekly_reports,
			updated_at = EXCLUDED.updated_at
	`

	model := notificationsModel{
		UserID:             string(s.UserID),
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		JobAlerts:          s.JobAlerts,
		WeeklyReports:      s.WeeklyReports,
		UpdatedAt:          updatedAt(s.UpdatedAt),
	}
	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to upsert notification settings: %w", err)
	}
	return nil
}
