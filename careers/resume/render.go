package resume

import (
	"bytes"
	"html/template"
	"strings"
)

var documentTemplate = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
        .header { text-align: center; margin-bottom: 30px; }
        .name { font-size: 2.5em; font-weight: bold; margin-bottom: 10px; }
        .contact { color: #666; }
        .section { margin-bottom: 25px; }
        .section-title { font-size: 1.3em; font-weight: bold; border-bottom: 2px solid #333; padding-bottom: 5px; margin-bottom: 15px; }
        .experience-item, .education-item, .project-item { margin-bottom: 20px; }
        .item-header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 5px; }
        .item-title { font-weight: bold; }
        .item-duration { color: #666; font-size: 0.9em; }
        .item-company { color: #555; font-weight: 500; margin-bottom: 8px; }
        .skills { display: flex; flex-wrap: wrap; gap: 8px; }
        .skill { background: #f0f0f0; padding: 4px 12px; border-radius: 20px; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="header">
        <div class="name">{{.Name}}</div>
        <div class="contact">
            {{- with .Data.PersonalInfo}}
            {{if .Email}}<div>{{.Email}}</div>{{end}}
            {{if .Phone}}<div>{{.Phone}}</div>{{end}}
            {{if .Location}}<div>{{.Location}}</div>{{end}}
            {{if .LinkedIn}}<div>{{.LinkedIn}}</div>{{end}}
            {{if .Portfolio}}<div>{{.Portfolio}}</div>{{end}}
            {{- end}}
        </div>
    </div>
{{with .Data.Summary}}
    <div class="section">
        <div class="section-title">Professional Summary</div>
        <p>{{.}}</p>
    </div>
{{end}}{{with .Data.Experience}}
    <div class="section">
        <div class="section-title">Work Experience</div>
        {{- range .}}
        <div class="experience-item">
            <div class="item-header">
                <div class="item-title">{{.Position}}</div>
                <div class="item-duration">{{.Duration}}</div>
            </div>
            <div class="item-company">{{.Company}}</div>
            <p>{{.Description}}</p>
        </div>
        {{- end}}
    </div>
{{end}}{{with .Data.Education}}
    <div class="section">
        <div class="section-title">Education</div>
        {{- range .}}
        <div class="education-item">
            <div class="item-header">
                <div class="item-title">{{.Degree}}</div>
                <div class="item-duration">{{.Duration}}</div>
            </div>
            <div class="item-company">{{.Institution}}</div>
            {{if .GPA}}<p>GPA: {{.GPA}}</p>{{end}}
        </div>
        {{- end}}
    </div>
{{end}}{{with .Data.Skills}}
    <div class="section">
        <div class="section-title">Skills</div>
        <div class="skills">
            {{range .}}<span class="skill">{{.}}</span>{{end}}
        </div>
    </div>
{{end}}{{with .Data.Projects}}
    <div class="section">
        <div class="section-title">Projects</div>
        {{- range .}}
        <div class="project-item">
            <div class="item-header">
                <div class="item-title">{{.Name}}</div>
                {{if .Link}}<a href="{{.Link}}">View Project</a>{{end}}
            </div>
            <div class="item-company">{{.Technologies}}</div>
            <p>{{.Description}}</p>
        </div>
        {{- end}}
    </div>
{{end}}
</body>
</html>
`))

type documentView struct {
	Title string
	Name  string
	Data  *Data
}

// RenderHTML renders the resume as a standalone HTML document. Field values are escaped.
func RenderHTML(data *Data) (string, error) {
	view := documentView{
		Title: data.DisplayName("Resume"),
		Name:  data.DisplayName("Your Name"),
		Data:  data,
	}

	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DownloadFilename returns "<name or resume>.<ext>" safe for a Content-Disposition header
func DownloadFilename(data *Data, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == '"' || r == '\\' || r == '/' || r < 0x20 || r == 0x7f:
			return -1
		default:
			return r
		}
	}, data.DisplayName("resume"))

	if strings.TrimSpace(name) == "" {
		name = "resume"
	}
	return name + "." + ext
}
