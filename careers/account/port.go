package account

import (
	"context"

	"github.com/Abraxas-365/careersync/pkg/kernel"
)

// Repository stores the 1:1 settings rows of a user. Getters return the
// matching *_NOT_FOUND error when the user has not saved anything yet.
type Repository interface {
	GetProfile(ctx context.Context, userID kernel.UserID) (*Profile, error)
	UpsertProfile(ctx context.Context, profile *Profile) error

	GetAPIKeys(ctx context.Context, userID kernel.UserID) (*APIKeys, error)
	UpsertAPIKeys(ctx context.Context, keys *APIKeys) error

	GetNotificationSettings(ctx context.Context, userID kernel.UserID) (*NotificationSettings, error)
	UpsertNotificationSettings(ctx context.Context, settings *NotificationSettings) error
}

// KeyProber checks a provider key with a live call
type KeyProber interface {
	Probe(ctx context.Context, provider, key string) error
}
