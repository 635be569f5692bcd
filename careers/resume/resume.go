package resume

import (
	"time"

	"github.com/Abraxas-365/careersync/pkg/kernel"
)

// Resume is the single saved resume of a user
type Resume struct {
	ID        kernel.ResumeID `json:"id"`
	UserID    kernel.UserID   `json:"user_id"`
	Title     string          `json:"title"`
	Content   Content         `json:"content"`
	ATSScore  *int            `json:"ats_score"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TitleFor builds the title given to a resume on first save
func TitleFor(content Content) string {
	name := "My"
	if data, err := content.Data(); err == nil {
		name = data.DisplayName(name)
	}
	return name + " Resume"
}

// ClampScore bounds an ATS score to 0..100
func ClampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
