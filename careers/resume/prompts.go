package resume

import "fmt"

const contentSchema = `{
  "personalInfo": {
    "name": "",
    "email": "",
    "phone": "",
    "location": "",
    "linkedin": "",
    "portfolio": ""
  },
  "summary": "",
  "experience": [
    {
      "id": "unique_id",
      "company": "",
      "position": "",
      "duration": "",
      "description": ""
    }
  ],
  "education": [
    {
      "id": "unique_id",
      "institution": "",
      "degree": "",
      "duration": "",
      "gpa": ""
    }
  ],
  "skills": ["skill1", "skill2"],
  "projects": [
    {
      "id": "unique_id",
      "name": "",
      "description": "",
      "technologies": "",
      "link": ""
    }
  ]
}`

// ParsePrompt asks the model to structure raw resume text
func ParsePrompt(resumeText string) string {
	return fmt.Sprintf(`Parse the following resume text and extract structured information. Return a JSON object with the following structure:
%s

Resume text:
%s

Please extract all available information and structure it properly. Generate unique IDs for each experience, education, and project entry.`, contentSchema, resumeText)
}

// TailorPrompt asks the model to rewrite a resume for a job description
func TailorPrompt(content Content, jobDescription string) string {
	return fmt.Sprintf(`You are an expert resume writer. Tailor the following resume to match the job description provided.
Focus on:
1. Optimizing the professional summary to align with the job requirements
2. Highlighting relevant experience and achievements
3. Emphasizing matching skills
4. Adjusting project descriptions to show relevant experience
5. Using keywords from the job description naturally

Current Resume Data:
%s

Job Description:
%s

Return the tailored resume in the same JSON structure as the input, but with optimized content that better matches the job requirements. Keep all the original structure and IDs intact.`, content.Indent(), jobDescription)
}
