package resume

// TailorRequest - DTO for POST /api/resume/tailor
type TailorRequest struct {
	ResumeData     Content `json:"resumeData"`
	JobDescription string  `json:"jobDescription"`
}

// ContentRequest - DTO for the save and download routes
type ContentRequest struct {
	ResumeData Content `json:"resumeData"`
}

// ResumeDataResponse - DTO returned by parse and tailor
type ResumeDataResponse struct {
	Success    bool    `json:"success"`
	ResumeData Content `json:"resumeData"`
	Message    string  `json:"message"`
}

// SaveResponse - DTO returned by save
type SaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetResponse - DTO returned by get. Resume is null when nothing was saved yet.
type GetResponse struct {
	Success bool    `json:"success"`
	Resume  *Resume `json:"resume"`
}

// Format selects the download representation
type Format string

const (
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

// ParseFormat defaults to HTML for empty or unknown values
func ParseFormat(value string) Format {
	if Format(value) == FormatPDF {
		return FormatPDF
	}
	return FormatHTML
}

// Download is a rendered resume file
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}
