package kernel

import "strings"

type Email string

func NewEmail(email string) Email { return Email(strings.ToLower(strings.TrimSpace(email))) }
func (e Email) String() string    { return string(e) }

// APIKeyPrefixLength is how many characters of a stored secret stay visible when masked
const APIKeyPrefixLength = 8

// MaskSecret keeps the first APIKeyPrefixLength characters of a secret followed by "..."
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= APIKeyPrefixLength {
		return string(runes) + "..."
	}
	return string(runes[:APIKeyPrefixLength]) + "..."
}

// IsMaskedSecret reports whether value looks like the output of MaskSecret
func IsMaskedSecret(value string) bool {
	return strings.HasSuffix(value, "...") && len([]rune(value)) <= APIKeyPrefixLength+3
}
