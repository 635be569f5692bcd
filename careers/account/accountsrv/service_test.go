package accountsrv

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Abraxas-365/careersync/careers/account"
	"github.com/Abraxas-365/careersync/pkg/cryptox"
	"github.com/Abraxas-365/careersync/pkg/errx"
	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/validatex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	profiles      map[kernel.UserID]*account.Profile
	keys          map[kernel.UserID]*account.APIKeys
	notifications map[kernel.UserID]*account.NotificationSettings
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		profiles:      map[kernel.UserID]*account.Profile{},
		keys:          map[kernel.UserID]*account.APIKeys{},
		notifications: map[kernel.UserID]*account.NotificationSettings{},
	}
}

func (m *memoryRepo) GetProfile(ctx context.Context, userID kernel.UserID) (*account.Profile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, account.ErrProfileNotFound()
}

func (m *memoryRepo) UpsertProfile(ctx context.Context, p *account.Profile) error {
	m.profiles[p.UserID] = p
	return nil
}

func (m *memoryRepo) GetAPIKeys(ctx context.Context, userID kernel.UserID) (*account.APIKeys, error) {
	if k, ok := m.keys[userID]; ok {
		return k, nil
	}
	return nil, account.ErrAPIKeysNotFound()
}

func (m *memoryRepo) UpsertAPIKeys(ctx context.Context, k *account.APIKeys) error {
	m.keys[k.UserID] = k
	return nil
}

func (m *memoryRepo) GetNotificationSettings(ctx context.Context, userID kernel.UserID) (*account.NotificationSettings, error) {
	if s, ok := m.notifications[userID]; ok {
		return s, nil
	}
	return nil, account.ErrNotificationsNotFound()
}

func (m *memoryRepo) UpsertNotificationSettings(ctx context.Context, s *account.NotificationSettings) error {
	m.notifications[s.UserID] = s
	return nil
}

type stubProber struct {
	valid map[string]bool
	calls []string
}

func (s *stubProber) Probe(ctx context.Context, provider, key string) error {
	s.calls = append(s.calls, provider+":"+key)
	if s.valid[key] {
		return nil
	}
	return errors.New("401 unauthorized")
}

func newService(t *testing.T) (*Service, *memoryRepo, *stubProber) {
	t.Helper()
	box, err := cryptox.NewBox("test-secret")
	require.NoError(t, err)
	repo := newMemoryRepo()
	prober := &stubProber{valid: map[string]bool{"AIzaGoodKey123": true, "sk-good-openai": true}}
	return NewService(repo, box, prober), repo, prober
}

func TestProfileDefaultsThenUpdate(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	p, err := svc.GetProfile(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", p.Name)
	assert.Equal(t, "San Francisco, CA", p.Location)

	_, err = svc.UpdateProfile(ctx, "u", account.ProfileRequest{Name: "Ana", Email: "not-an-email"})
	assert.True(t, errx.IsCode(err, validatex.CodeInvalidInput))

	_, err = svc.UpdateProfile(ctx, "u", account.ProfileRequest{Name: " Ana ", Email: "ana@example.com", Location: "Lima"})
	require.NoError(t, err)

	p, err = svc.GetProfile(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, "Lima", p.Location)
	assert.Empty(t, p.Phone)

	_, err = svc.UpdateProfile(ctx, "u", account.ProfileRequest{Name: "Ana", Email: " Ana.Diaz@Example.COM "})
	require.NoError(t, err)
	p, err = svc.GetProfile(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "ana.diaz@example.com", p.Email)
}

func TestAPIKeysAreSealedAndMasked(t *testing.T) {
	svc, repo, _ := newService(t)
	ctx := context.Background()

	masked, err := svc.GetMaskedAPIKeys(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, &account.MaskedAPIKeys{}, masked)

	require.NoError(t, svc.UpdateAPIKeys(ctx, "u", account.APIKeysRequest{GeminiKey: "AIzaSyExampleKey42", OpenAIKey: ""}))

	stored := repo.keys["u"]
	assert.True(t, strings.HasPrefix(stored.GeminiKey, "v1:"))
	assert.NotContains(t, stored.GeminiKey, "AIzaSy")
	assert.Empty(t, stored.OpenAIKey)

	masked, err = svc.GetMaskedAPIKeys(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "AIzaSyEx...", masked.GeminiKey)
	assert.Empty(t, masked.OpenAIKey)

	// sending the masked value back keeps the real key
	require.NoError(t, svc.UpdateAPIKeys(ctx, "u", account.APIKeysRequest{GeminiKey: "AIzaSyEx...", OpenAIKey: "sk-new-openai-key"}))
	keys, err := svc.openKeys(ctx, "u")
	require.NoError(t, err)
	assert.Equal(t, "AIzaSyExampleKey42", keys.GeminiKey)
	assert.Equal(t, "sk-new-openai-key", keys.OpenAIKey)
}

func TestTestAPIKey(t *testing.T) {
	svc, _, prober := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  account.TestKeyRequest
		want account.KeyTestResult
	}{
		{"missing key", account.TestKeyRequest{Provider: "gemini"}, account.KeyTestResult{Message: "API key is required"}},
		{"unknown provider", account.TestKeyRequest{Provider: "claude", Key: "k"}, account.KeyTestResult{Message: "Unsupported provider"}},
		{"valid gemini", account.TestKeyRequest{Provider: "gemini", Key: "AIzaGoodKey123"}, account.KeyTestResult{Valid: true, Message: "Gemini API key is valid"}},
		{"invalid gemini", account.TestKeyRequest{Provider: "gemini", Key: "AIzaBad"}, account.KeyTestResult{Message: "Invalid Gemini API key"}},
		{"valid openai", account.TestKeyRequest{Provider: "OpenAI", Key: "sk-good-openai"}, account.KeyTestResult{Valid: true, Message: "OpenAI API key is valid"}},
		{"invalid openai", account.TestKeyRequest{Provider: "openai", Key: "sk-bad"}, account.KeyTestResult{Message: "Invalid OpenAI API key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.TestAPIKey(ctx, tt.req))
		})
	}
	assert.Len(t, prober.calls, 4)
}

func TestNotificationSettings(t *testing.T) {
	svc, _, _ := newService(t)
	ctx := context.Background()

	s, err := svc.GetNotificationSettings(ctx, "u")
	require.NoError(t, err)
	assert.True(t, s.EmailNotifications)
	assert.False(t, s.PushNotifications)

	off := false
	on := true
	_, err = svc.UpdateNotificationSettings(ctx, "u", account.NotificationsRequest{WeeklyReports: &off, PushNotifications: &on})
	require.NoError(t, err)

	s, err = svc.GetNotificationSettings(ctx, "u")
	require.NoError(t, err)
	assert.True(t, s.EmailNotifications)
	assert.True(t, s.PushNotifications)
	assert.True(t, s.JobAlerts)
	assert.False(t, s.WeeklyReports)
}
