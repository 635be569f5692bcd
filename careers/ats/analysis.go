package ats

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Analysis is the model's assessment of a resume against a job description,
// kept as the model sent it. Only numeric scores are touched, see Normalize.
type Analysis map[string]any

// Overall reads score.overall leniently. ok is false when it is missing or
// not a number.
func (a Analysis) Overall() (score int, ok bool) {
	s, _ := a["score"].(map[string]any)
	return points(s["overall"])
}

// Normalize clamps score.overall and score.sections.* to 0..100 when they
// read as numbers. Anything else is left as is.
func (a Analysis) Normalize() {
	s, ok := a["score"].(map[string]any)
	if !ok {
		return
	}
	clampKey(s, "overall")

	sections, ok := s["sections"].(map[string]any)
	if !ok {
		return
	}
	for key := range sections {
		clampKey(sections, key)
	}
}

func clampKey(m map[string]any, key string) {
	if v, ok := points(m[key]); ok {
		m[key] = v
	}
}

// points accepts numbers, numeric strings and percentages such as "90%".
// Fractions are rounded.
func points(v any) (int, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		raw := strings.TrimSuffix(strings.TrimSpace(x), "%")
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return clamp(int(math.Round(f))), true
}

func clamp(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

// Prompt asks the model for an ATS compatibility analysis
func Prompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`Analyze this resume against the job description for ATS (Applicant Tracking System) compatibility.

Resume:
%s

Job Description:
%s

Please provide a detailed analysis in the following JSON format:
{
  "score": {
    "overall": <number 0-100>,
    "sections": {
      "formatting": <number 0-100>,
      "keywords": <number 0-100>,
      "experience": <number 0-100>,
      "education": <number 0-100>,
      "skills": <number 0-100>
    }
  },
  "keywords": {
    "matched": ["keyword1", "keyword2"],
    "missing": ["missing1", "missing2"],
    "suggestions": ["suggestion1", "suggestion2"]
  },
  "improvements": [
    "Specific improvement suggestion 1",
    "Specific improvement suggestion 2"
  ],
  "strengths": [
    "Strength 1 found in resume",
    "Strength 2 found in resume"
  ],
  "recommendations": [
    "Actionable recommendation 1",
    "Actionable recommendation 2"
  ]
}

Analysis criteria:
1. Formatting: Check for ATS-friendly formatting (no tables, images, complex layouts)
2. Keywords: Match job description keywords with resume content
3. Experience: Relevance of work experience to job requirements
4. Education: Educational background alignment
5. Skills: Technical and soft skills matching

Provide specific, actionable feedback. Be thorough in keyword analysis.
Return only valid JSON without any additional text.`, resumeText, jobDescription)
}
