package accountsrv

import (
	"context"
	"strings"
	"time"

	"github.com/Abraxas-365/careersync/careers/account"
	"github.com/Abraxas-365/careersync/internal/ai"
	"github.com/Abraxas-365/careersync/pkg/cryptox"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/logx"
)

// Service manages profile, API key and notification settings
type Service struct {
	repo   account.Repository
	box    *cryptox.Box
	prober account.KeyProber
	now    func() time.Time
}

func NewService(repo account.Repository, box *cryptox.Box, prober account.KeyProber) *Service {
	return &Service{
		repo:   repo,
		box:    box,
		prober: prober,
		now:    time.Now,
	}
}

// ============================================================================
// Profile
// ============================================================================

// GetProfile returns the stored profile or the default one
func (s *Service) GetProfile(ctx context.Context, userID kernel.UserID) (*account.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		if errx.IsCode(err, account.CodeProfileNotFound) {
			return account.DefaultProfile(), nil
		}
		return nil, errx.Wrap(err, "failed to fetch profile", errx.TypeInternal)
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID kernel.UserID, req account.ProfileRequest) (*account.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile := &account.Profile{
		UserID:    userID,
		Name:      req.Name,
		Email:     kernel.NewEmail(req.Email).String(),
		Phone:     req.Phone,
		Location:  req.Location,
		Bio:       req.Bio,
		UpdatedAt: &now,
	}
	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, errx.Wrap(err, "failed to update profile", errx.TypeInternal)
	}

	logx.Infof("Profile updated for user %s", userID)
	return profile, nil
}

// ============================================================================
// API keys
// ============================================================================

// GetMaskedAPIKeys returns the user's keys with all but the prefix hidden
func (s *Service) GetMaskedAPIKeys(ctx context.Context, userID kernel.UserID) (*account.MaskedAPIKeys, error) {
	keys, err := s.openKeys(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &account.MaskedAPIKeys{
		GeminiKey: kernel.MaskSecret(keys.GeminiKey),
		OpenAIKey: kernel.MaskSecret(keys.OpenAIKey),
	}, nil
}

// UpdateAPIKeys seals and stores the keys. A key sent back in its masked
// form keeps the stored value.
func (s *Service) UpdateAPIKeys(ctx context.Context, userID kernel.UserID, req account.APIKeysRequest) error {
	current, err := s.openKeys(ctx, userID)
	if err != nil {
		return err
	}

	gemini := resolveKey(strings.TrimSpace(req.GeminiKey), current.GeminiKey)
	openai := resolveKey(strings.TrimSpace(req.OpenAIKey), current.OpenAIKey)

	sealedGemini, err := s.box.Seal(gemini)
	if err != nil {
		return account.ErrKeyStorageFailed().WithCause(err)
	}
	sealedOpenAI, err := s.box.Seal(openai)
	if err != nil {
		return account.ErrKeyStorageFailed().WithCause(err)
	}

	err = s.repo.UpsertAPIKeys(ctx, &account.APIKeys{
		UserID:    userID,
		GeminiKey: sealedGemini,
		OpenAIKey: sealedOpenAI,
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return errx.Wrap(err, "failed to update API keys", errx.TypeInternal)
	}

	logx.Infof("API keys updated for user %s (gemini %s, openai %s)",
		userID, kernel.MaskSecret(gemini), kernel.MaskSecret(openai))
	return nil
}

func resolveKey(sent, stored string) string {
	if sent != "" && kernel.IsMaskedSecret(sent) && sent == kernel.MaskSecret(stored) {
		return stored
	}
	return sent
}

// openKeys loads and decrypts the user's keys. Missing rows yield empty keys.
func (s *Service) openKeys(ctx context.Context, userID kernel.UserID) (*account.APIKeys, error) {
	stored, err := s.repo.GetAPIKeys(ctx, userID)
	if err != nil {
		if errx.IsCode(err, account.CodeAPIKeysNotFound) {
			return &account.APIKeys{UserID: userID}, nil
		}
		return nil, errx.Wrap(err, "failed to fetch API keys", errx.TypeInternal)
	}

	gemini, err := s.box.Open(stored.GeminiKey)
	if err != nil {
		return nil, errx.Wrap(err, "failed to decrypt gemini key", errx.TypeInternal)
	}
	openai, err := s.box.Open(stored.OpenAIKey)
	if err != nil {
		return nil, errx.Wrap(err, "failed to decrypt openai key", errx.TypeInternal)
	}

	return &account.APIKeys{
		UserID:    userID,
		GeminiKey: gemini,
		OpenAIKey: openai,
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

// TestAPIKey makes a live call with key. The result is a client answer, not an error.
func (s *Service) TestAPIKey(ctx context.Context, req account.TestKeyRequest) account.KeyTestResult {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return account.KeyTestResult{Valid: false, Message: "API key is required"}
	}

	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if provider != ai.ProviderGemini && provider != ai.ProviderOpenAI {
		return account.KeyTestResult{Valid: false, Message: "Unsupported provider"}
	}

	label := account.ProviderLabel(provider)
	if err := s.prober.Probe(ctx, provider, key); err != nil {
		logx.Debugf("%s key probe failed: %v", label, err)
		return account.KeyTestResult{Valid: false, Message: "Invalid " + label + " API key"}
	}
	return account.KeyTestResult{Valid: true, Message: label + " API key is valid"}
}

// ============================================================================
// Notifications
// ============================================================================

func (s *Service) GetNotificationSettings(ctx context.Context, userID kernel.UserID) (*account.NotificationSettings, error) {
	settings, err := s.repo.GetNotificationSettings(ctx, userID)
	if err != nil {
		if errx.IsCode(err, account.CodeNotificationsNotFound) {
			return account.DefaultNotificationSettings(), nil
		}
		return nil, errx.Wrap(err, "failed to fetch notification settings", errx.TypeInternal)
	}
	return settings, nil
}

func (s *Service) UpdateNotificationSettings(ctx context.Context, userID kernel.UserID, req account.NotificationsRequest) (*account.NotificationSettings, error) {
	settings := req.Settings()
	now := s.now().UTC()
	settings.UserID = userID
	settings.UpdatedAt = &now

	if err := s.repo.UpsertNotificationSettings(ctx, settings); err != nil {
		return nil, errx.Wrap(err, "failed to update notification settings", errx.TypeInternal)
	}
	return settings, nil
}
