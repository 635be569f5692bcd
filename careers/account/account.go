package account

import (
	"time"

	"github.com/Abraxas-365/careersync/pkg/kernel"
)

// Profile is the user's contact card shown on the settings page
type Profile struct {
	UserID    kernel.UserID `json:"userId,omitempty"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Location  string        `json:"location"`
	Bio       string        `json:"bio"`
	UpdatedAt *time.Time    `json:"updatedAt,omitempty"`
}

// DefaultProfile is returned until the user saves one
func DefaultProfile() *Profile {
	return &Profile{
		Name:     "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Bio:      "Experienced software developer passionate about creating innovative solutions.",
	}
}

// APIKeys are the user's own AI provider keys. The repository only ever
// sees sealed values.
type APIKeys struct {
	UserID    kernel.UserID
	GeminiKey string
	OpenAIKey string
	UpdatedAt time.Time
}

// NotificationSettings are the user's delivery preferences
type NotificationSettings struct {
	UserID             kernel.UserID `json:"userId,omitempty"`
	EmailNotifications bool          `json:"emailNotifications"`
	PushNotifications  bool          `json:"pushNotifications"`
	JobAlerts          bool          `json:"jobAlerts"`
	WeeklyReports      bool          `json:"weeklyReports"`
	UpdatedAt          *time.Time    `json:"updatedAt,omitempty"`
}

func DefaultNotificationSettings() *NotificationSettings {
	return &NotificationSettings{
		EmailNotifications: true,
		PushNotifications:  false,
		JobAlerts:          true,
		WeeklyReports:      true,
	}
}

// ProviderLabel is the display name used in key test messages
func ProviderLabel(provider string) string {
	switch provider {
	case "gemini":
		return "Gemini"
	case "openai":
		return "OpenAI"
	}
	return provider
}
