package resume

import (
	"context"

	"github.com/Abraxas-365/careersync/pkg/kernel"
)

type Repository interface {
	// GetByUserID retrieves the user's resume. Returns ErrResumeNotFound when there is none.
	GetByUserID(ctx context.Context, userID kernel.UserID) (*Resume, error)

	// Upsert inserts the resume or replaces the content of the user's existing one.
	// The title of an existing resume is left untouched.
	Upsert(ctx context.Context, resume *Resume) error

	// UpdateATSScore stores the latest score of the user's resume
	UpdateATSScore(ctx context.Context, userID kernel.UserID, score int) error
}
