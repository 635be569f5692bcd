package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Content is a resume document kept exactly as the client or model produced it.
// Keys the server does not know about survive a save and get.
type Content []byte

func (c Content) MarshalJSON() ([]byte, error) {
	if c.IsEmpty() {
		return []byte("null"), nil
	}
	return c, nil
}

func (c *Content) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		return fmt.Errorf("resume content is not valid JSON")
	}
	*c = append((*c)[:0], data...)
	return nil
}

// IsEmpty reports whether no document was supplied
func (c Content) IsEmpty() bool {
	trimmed := bytes.TrimSpace(c)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// IsObject reports whether the document is a JSON object
func (c Content) IsObject() bool {
	trimmed := bytes.TrimSpace(c)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// Data decodes the known sections of the document
func (c Content) Data() (*Data, error) {
	var d Data
	if c.IsEmpty() {
		return &d, nil
	}
	if err := json.Unmarshal(c, &d); err != nil {
		return nil, fmt.Errorf("decode resume content: %w", err)
	}
	return &d, nil
}

// Indent returns the document pretty printed for prompts
func (c Content) Indent() string {
	var out bytes.Buffer
	if err := json.Indent(&out, c, "", "  "); err != nil {
		return string(c)
	}
	return out.String()
}

// ============================================================================
// Known sections
// ============================================================================

// Data is the typed view of a resume used for rendering
type Data struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      Text         `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []Text       `json:"skills"`
	Projects     []Project    `json:"projects"`
}

type PersonalInfo struct {
	Name      Text `json:"name"`
	Email     Text `json:"email"`
	Phone     Text `json:"phone"`
	Location  Text `json:"location"`
	LinkedIn  Text `json:"linkedin"`
	Portfolio Text `json:"portfolio"`
}

type Experience struct {
	ID          Text `json:"id"`
	Company     Text `json:"company"`
	Position    Text `json:"position"`
	Duration    Text `json:"duration"`
	Description Text `json:"description"`
}

type Education struct {
	ID          Text `json:"id"`
	Institution Text `json:"institution"`
	Degree      Text `json:"degree"`
	Duration    Text `json:"duration"`
	GPA         Text `json:"gpa"`
}

type Project struct {
	ID           Text `json:"id"`
	Name         Text `json:"name"`
	Description  Text `json:"description"`
	Technologies Text `json:"technologies"`
	Link         Text `json:"link"`
}

// Text is a string field that tolerates numbers, nulls and string lists,
// which models sometimes return where a string is expected.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '[':
		var items []Text
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		parts := make([]string, 0, len(items))
		for _, item := range items {
			if item != "" {
				parts = append(parts, string(item))
			}
		}
		*t = Text(strings.Join(parts, ", "))
	case '{':
		return fmt.Errorf("expected text, got object")
	default:
		*t = Text(data)
	}
	return nil
}

func (t Text) String() string { return string(t) }

// DisplayName returns the candidate name or fallback when blank
func (d *Data) DisplayName(fallback string) string {
	if name := strings.TrimSpace(string(d.PersonalInfo.Name)); name != "" {
		return name
	}
	return fallback
}
