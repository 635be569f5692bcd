package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoJSON      = errors.New("model response contains no JSON object")
	ErrInvalidJSON = errors.New("model response contains invalid JSON")
)

// ExtractJSON pulls the JSON object out of a model reply. Markdown fences are
// stripped and the text between the first '{' and the last '}' is returned.
func ExtractJSON(raw string) (string, error) {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSON
	}

	candidate := cleaned[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", ErrInvalidJSON
	}
	return candidate, nil
}

// DecodeJSON extracts the JSON object from raw and unmarshals it into v
func DecodeJSON(raw string, v any) error {
	candidate, err := ExtractJSON(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, "```json", "")
	raw = strings.ReplaceAll(raw, "```JSON", "")
	raw = strings.ReplaceAll(raw, "```", "")
	return strings.TrimSpace(raw)
}
