package coverletter

import (
	"fmt"
	"strings"
)

// Tone selects the writing style of a generated letter
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneCreative     Tone = "creative"
	ToneFormal       Tone = "formal"
)

var toneInstructions = map[Tone]string{
	ToneProfessional: "Use a professional, formal tone that is respectful and business-appropriate.",
	ToneEnthusiastic: "Use an energetic, passionate tone that shows excitement and motivation.",
	ToneCreative:     "Use a unique, innovative approach with creative language while maintaining professionalism.",
	ToneFormal:       "Use a traditional, conservative tone with formal language and structure.",
}

// ParseTone falls back to professional for empty or unknown values
func ParseTone(s string) Tone {
	t := Tone(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := toneInstructions[t]; ok {
		return t
	}
	return ToneProfessional
}

func (t Tone) Instruction() string {
	return toneInstructions[ParseTone(string(t))]
}

type PersonalInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// GenerateRequest - DTO for POST /api/cover-letter/generate
type GenerateRequest struct {
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	JobTitle       string       `json:"jobTitle"`
	CompanyName    string       `json:"companyName"`
	JobDescription string       `json:"jobDescription"`
	Experience     string       `json:"experience"`
	Skills         string       `json:"skills"`
	Achievements   string       `json:"achievements"`
	Tone           string       `json:"tone"`
}

// Validate requires the job title, the company and the applicant's name
func (r *GenerateRequest) Validate() error {
	r.JobTitle = strings.TrimSpace(r.JobTitle)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.PersonalInfo.Name = strings.TrimSpace(r.PersonalInfo.Name)

	if r.JobTitle == "" || r.CompanyName == "" || r.PersonalInfo.Name == "" {
		return ErrMissingFields()
	}
	return nil
}

// GenerateResponse - DTO returned by generate
type GenerateResponse struct {
	Success     bool   `json:"success"`
	CoverLetter string `json:"coverLetter"`
	Message     string `json:"message"`
}

func orNotProvided(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "Not provided"
	}
	return s
}

// Prompt asks the model for a plain-text cover letter
func Prompt(r GenerateRequest) string {
	return fmt.Sprintf(`Generate a professional cover letter based on the following information:

Personal Information:
- Name: %s
- Email: %s
- Phone: %s
- Address: %s

Job Information:
- Job Title: %s
- Company Name: %s
- Job Description: %s

Additional Information:
- Relevant Experience: %s
- Key Skills: %s
- Notable Achievements: %s

Writing Style: %s

Please create a compelling cover letter that:
1. Starts with proper contact information and date
2. Addresses the hiring manager professionally
3. Has a strong opening paragraph that grabs attention
4. Highlights relevant experience and skills that match the job requirements
5. Showcases specific achievements and accomplishments
6. Demonstrates knowledge about the company (if job description is provided)
7. Explains why the candidate is a perfect fit for the role
8. Ends with a professional closing and call to action
9. Maintains the specified tone throughout
10. Is approximately 3-4 paragraphs long

Format the cover letter properly with appropriate spacing and professional structure.
Make it personalized, engaging, and tailored to the specific job and company.

Return only the cover letter content without any additional commentary.`,
		r.PersonalInfo.Name,
		orNotProvided(r.PersonalInfo.Email),
		orNotProvided(r.PersonalInfo.Phone),
		orNotProvided(r.PersonalInfo.Address),
		r.JobTitle,
		r.CompanyName,
		orNotProvided(r.JobDescription),
		orNotProvided(r.Experience),
		orNotProvided(r.Skills),
		orNotProvided(r.Achievements),
		Tone(r.Tone).Instruction(),
	)
}
