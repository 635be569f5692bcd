package account

import (
	"strings"

	"github.com/Abraxas-365/careersync/pkg/validatex"
)

// ProfileRequest - DTO for PUT /api/user/profile
type ProfileRequest struct {
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"max=64"`
	Location string `json:"location" validate:"max=255"`
	Bio      string `json:"bio" validate:"max=2000"`
}

func (r *ProfileRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Location = strings.TrimSpace(r.Location)
	return validatex.Struct(r)
}

// ProfileResponse - DTO returned by PUT /api/user/profile
type ProfileResponse struct {
	Profile *Profile `json:"profile"`
}

// APIKeysRequest - DTO for PUT /api/user/api-keys
type APIKeysRequest struct {
	GeminiKey string `json:"geminiKey"`
	OpenAIKey string `json:"openaiKey"`
}

// MaskedAPIKeys - DTO for GET /api/user/api-keys
type MaskedAPIKeys struct {
	GeminiKey string `json:"geminiKey"`
	OpenAIKey string `json:"openaiKey"`
}

// TestKeyRequest - DTO for POST /api/user/test-api-key
type TestKeyRequest struct {
	Provider string `json:"provider"`
	Key      string `json:"key"`
}

// KeyTestResult is written as is, the frontend reads valid and message
type KeyTestResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

// NotificationsRequest - DTO for PUT /api/user/notifications.
// Omitted flags take their default value.
type NotificationsRequest struct {
	EmailNotifications *bool `json:"emailNotifications"`
	PushNotifications  *bool `json:"pushNotifications"`
	JobAlerts          *bool `json:"jobAlerts"`
	WeeklyReports      *bool `json:"weeklyReports"`
}

func (r NotificationsRequest) Settings() *NotificationSettings {
	s := DefaultNotificationSettings()
	pick := func(dst *bool, v *bool) {
		if v != nil {
			*dst = *v
		}
	}
	pick(&s.EmailNotifications, r.EmailNotifications)
	pick(&s.PushNotifications, r.PushNotifications)
	pick(&s.JobAlerts, r.JobAlerts)
	pick(&s.WeeklyReports, r.WeeklyReports)
	return s
}

// NotificationsResponse - DTO returned by PUT /api/user/notifications
type NotificationsResponse struct {
	Settings *NotificationSettings `json:"settings"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
