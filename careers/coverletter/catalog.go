package coverletter

// Template previews the opening of a letter in one tone
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tone        Tone   `json:"tone"`
	Preview     string `json:"preview"`
}

type TipCategory struct {
	Category string   `json:"category"`
	Tips     []string `json:"tips"`
}

// TemplatesResponse - DTO for GET /api/cover-letter/templates
type TemplatesResponse struct {
	Success   bool       `json:"success"`
	Templates []Template `json:"templates"`
}

// TipsResponse - DTO for GET /api/cover-letter/tips
type TipsResponse struct {
	Success bool          `json:"success"`
	Tips    []TipCategory `json:"tips"`
}

func Templates() []Template {
	return []Template{
		{
			ID:          "professional",
			Name:        "Professional",
			Description: "A formal, business-appropriate template",
			Tone:        ToneProfessional,
			Preview:     "Dear Hiring Manager,\n\nI am writing to express my strong interest in the [Job Title] position at [Company Name]...",
		},
		{
			ID:          "enthusiastic",
			Name:        "Enthusiastic",
			Description: "An energetic template showing passion",
			Tone:        ToneEnthusiastic,
			Preview:     "Dear Hiring Team,\n\nI am thrilled to apply for the [Job Title] role at [Company Name]! Your company's mission...",
		},
		{
			ID:          "creative",
			Name:        "Creative",
			Description: "A unique approach for creative roles",
			Tone:        ToneCreative,
			Preview:     "Hello [Company Name] Team,\n\nWhen I discovered the [Job Title] opening at [Company Name], I knew this was the opportunity...",
		},
		{
			ID:          "formal",
			Name:        "Formal",
			Description: "Traditional and conservative approach",
			Tone:        ToneFormal,
			Preview:     "Dear Sir/Madam,\n\nI am writing to formally apply for the position of [Job Title] at [Company Name]...",
		},
	}
}

func Tips() []TipCategory {
	return []TipCategory{
		{
			Category: "Structure",
			Tips: []string{
				"Start with your contact information and the date",
				"Address the hiring manager by name if possible",
				"Keep it to one page maximum",
				"Use 3-4 paragraphs with clear structure",
			},
		},
		{
			Category: "Content",
			Tips: []string{
				"Customize each cover letter for the specific job",
				"Highlight your most relevant achievements",
				"Show knowledge about the company and role",
				"Explain why you want to work for this specific company",
			},
		},
		{
			Category: "Writing Style",
			Tips: []string{
				"Use active voice and strong action verbs",
				"Be specific with examples and numbers",
				"Match the tone to the company culture",
				"Proofread carefully for grammar and spelling",
			},
		},
		{
			Category: "Common Mistakes",
			Tips: []string{
				"Don't repeat everything from your resume",
				"Avoid generic, one-size-fits-all letters",
				"Don't focus only on what you want from the job",
				"Don't use overly casual language unless appropriate",
			},
		},
	}
}
