package resumeinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careersync/careers/resume"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
)

// PostgresResumeRepository implements resume.Repository using PostgreSQL
type PostgresResumeRepository struct {
	db *sqlx.DB
}

var _ resume.Repository = (*PostgresResumeRepository)(nil)

// NewPostgresResumeRepository creates a new PostgreSQL resume repository
func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

// ============================================================================
// Database Models
// ============================================================================

type resumeModel struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Title     string         `db:"title"`
	Content   types.JSONText `db:"content"`
	ATSScore  *int           `db:"ats_score"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (m *resumeModel) toEntity() *resume.Resume {
	return &resume.Resume{
		ID:        kernel.ResumeID(m.ID),
		UserID:    kernel.UserID(m.UserID),
		Title:     m.Title,
		Content:   resume.Content(m.Content),
		ATSScore:  m.ATSScore,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromEntity(r *resume.Resume) *resumeModel {
	return &resumeModel{
		ID:        string(r.ID),
		UserID:    string(r.UserID),
		Title:     r.Title,
		Content:   types.JSONText(r.Content),
		ATSScore:  r.ATSScore,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// GetByUserID retrieves the user's resume
func (r *PostgresResumeRepository) GetByUserID(ctx context.Context, userID kernel.UserID) (*resume.Resume, error) {
	query := `
		SELECT id, user_id, title, content, ats_score, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
	`

	var model resumeModel
	if err := r.db.GetContext(ctx, &model, query, string(userID)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrResumeNotFound()
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	return model.toEntity(), nil
}

// Upsert inserts the resume or replaces the content of the existing one
func (r *PostgresResumeRepository) Upsert(ctx context.Context, res *resume.Resume) error {
	query := `
		INSERT INTO resumes (id, user_id, title, content, ats_score, created_at, updated_at)
		VALUES (:id, :user_id, :title, :content, :ats_score, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(res)); err != nil {
		return fmt.Errorf("failed to upsert resume: %w", err)
	}
	return nil
}

// UpdateATSScore stores the latest score of the user's resume
func (r *PostgresResumeRepository) UpdateATSScore(ctx context.Context, userID kernel.UserID, score int) error {
	query := `UPDATE resumes SET ats_score = $1, updated_at = $2 WHERE user_id = $3`

	result, err := r.db.ExecContext(ctx, query, score, time.Now().UTC(), string(userID))
	if err != nil {
		return fmt.Errorf("failed to update ats score: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound()
	}
	return nil
}
