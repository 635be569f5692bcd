package application

import (
	"context"

	"github.com/Abraxas-365/careersync/pkg/kernel"
)

// Repository stores applications. Every call is scoped to the owning user.
type Repository interface {
	// Create inserts a new application
	Create(ctx context.Context, app *Application) error

	// Update replaces an application owned by the user. Returns ErrApplicationNotFound when no row matches.
	Update(ctx context.Context, app *Application) error

	// Delete removes an application owned by the user. Returns ErrApplicationNotFound when no row matches.
	Delete(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID) error

	// GetByID retrieves an application owned by the user
	GetByID(ctx context.Context, userID kernel.UserID, id kernel.ApplicationID) (*Application, error)

	// ListByUser returns the user's applications, newest first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]*Application, error)

	// ListAppliedSince returns applications applied on or after since, oldest first
	ListAppliedSince(ctx context.Context, userID kernel.UserID, since kernel.Date) ([]*Application, error)
}
