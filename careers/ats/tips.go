package ats

// TipCategory groups resume advice under a heading
type TipCategory struct {
	Category string   `json:"category"`
	Tips     []string `json:"tips"`
}

// Tips returns the static ATS optimization advice
func Tips() []TipCategory {
	return []TipCategory{
		{
			Category: "Formatting",
			Tips: []string{
				"Use standard fonts like Arial, Calibri, or Times New Roman",
				"Avoid tables, text boxes, and complex layouts",
				`Use standard section headings like "Experience", "Education", "Skills"`,
				"Save as PDF to preserve formatting",
			},
		},
		{
			Category: "Keywords",
			Tips: []string{
				"Include exact keywords from the job description",
				`Use both acronyms and full forms (e.g., "AI" and "Artificial Intelligence")`,
				"Include industry-specific terminology",
				"Match the language used in the job posting",
			},
		},
		{
			Category: "Content",
			Tips: []string{
				"Quantify achievements with numbers and percentages",
				"Use action verbs to start bullet points",
				"Include relevant certifications and licenses",
				"Tailor content to match job requirements",
			},
		},
		{
			Category: "Structure",
			Tips: []string{
				"Start with contact information at the top",
				"Include a professional summary or objective",
				"List experience in reverse chronological order",
				"Keep resume to 1-2 pages maximum",
			},
		},
	}
}
