package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	"github.com/aherreros/shopprobe/internal/domain"
)

// markdownTemplate renders a RunSummary as a GFM document. One table row
// per scenario, grouped by suite order as recorded.
const markdownTemplate = `# {{ .Title }}

- Target: {{ .BaseURL }}
- Started: {{ .StartedAt.Format "2006-01-02 15:04:05 MST" }}
- Duration: {{ duration .StartedAt .FinishedAt }}
- Result: **{{ verdict . }}** ({{ passed . }} passed, {{ failed . }} failed, {{ skipped . }} skipped)

| Suite | Scenario | Status | Duration |
| --- | --- | --- | --- |
{{- range .Results }}
| {{ .Suite }} | {{ .Name }} | {{ status . }} | {{ round .Duration }} |
{{- end }}
{{ range .Results }}{{ if .Failure }}
## {{ .Suite }}: {{ .Name }}

` + "```" + `
{{ .Failure }}
` + "```" + `
{{ end }}{{ end }}`

// Writer renders run summaries into report files.
type Writer struct {
	tmpl *template.Template
}

// NewWriter parses the built-in report template.
func NewWriter() (*Writer, error) {
	tmpl, err := template.New("run_summary").Funcs(template.FuncMap{
		"duration": func(start, end time.Time) string {
			return end.Sub(start).Round(time.Millisecond).String()
		},
		"round": func(d time.Duration) time.Duration {
			return d.Round(time.Millisecond)
		},
		"verdict": func(s *domain.RunSummary) string {
			if s.Passed() {
				return "PASSED"
			}
			return "FAILED"
		},
		"passed": func(s *domain.RunSummary) int {
			p, _, _ := s.Counts()
			return p
		},
		"failed": func(s *domain.RunSummary) int {
			_, f, _ := s.Counts()
			return f
		},
		"skipped": func(s *domain.RunSummary) int {
			_, _, sk := s.Counts()
			return sk
		},
		"status": func(r domain.ScenarioResult) string {
			switch {
			case r.Skipped:
				return "skipped"
			case r.Passed:
				return "passed"
			default:
				return "failed"
			}
		},
	}).Parse(markdownTemplate)
	if err != nil {
		return nil, domain.NewError("report", "", "", "failed to parse report template", err)
	}
	return &Writer{tmpl: tmpl}, nil
}

// RenderMarkdown renders the summary as a Markdown document.
func (w *Writer) RenderMarkdown(summary *domain.RunSummary) (string, error) {
	var buf bytes.Buffer
	if err := w.tmpl.Execute(&buf, summary); err != nil {
		return "", domain.NewError("report", "", "", "failed to render report", err)
	}
	return buf.String(), nil
}

// WriteFiles renders the summary and writes the Markdown and HTML report
// files into dir, creating it as needed. Empty filenames skip that format.
func (w *Writer) WriteFiles(summary *domain.RunSummary, dir, mdFile, htmlFile string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domain.NewError("report", "", dir, "failed to create report directory", err)
	}

	md, err := w.RenderMarkdown(summary)
	if err != nil {
		return err
	}

	if mdFile != "" {
		path := filepath.Join(dir, mdFile)
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return domain.NewError("report", "", path, "failed to write markdown report", err)
		}
	}

	if htmlFile != "" {
		html, err := RenderHTML(summary.Title, md)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, htmlFile)
		if err := os.WriteFile(path, []byte(html), 0644); err != nil {
			return domain.NewError("report", "", path, "failed to write html report", err)
		}
	}

	return nil
}

// SaveSummary writes the raw summary as JSON next to the rendered reports
// so it can be re-rendered later by the CLI.
func SaveSummary(summary *domain.RunSummary, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return domain.NewError("report", "", path, "failed to create summary directory", err)
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return domain.NewError("report", "", path, "failed to encode summary", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.NewError("report", "", path, "failed to write summary", err)
	}
	return nil
}

// LoadSummary reads a JSON summary written by SaveSummary.
func LoadSummary(path string) (*domain.RunSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("report", "", path, "failed to read summary", err)
	}
	var summary domain.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, domain.NewError("report", "", path, fmt.Sprintf("failed to parse summary %q", filepath.Base(path)), err)
	}
	return &summary, nil
}
