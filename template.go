package ask

import (
	"strings"
	"text/template"
)

// renderContext is what question and confirmation templates evaluate
// against.
type renderContext struct {
	// Question is the question being asked.
	Question *Question
	// Answer is the resolved answer; set only for confirmation templates.
	Answer any
	// Key is the current gather key for keyed gathering, empty otherwise.
	Key string
	// Default mirrors Question.Default for convenience.
	Default string
}

// renderTemplate renders src as a text/template with ctx in scope. Plain
// text without template actions is returned as-is without invoking the
// template engine.
func renderTemplate(src string, ctx renderContext) (string, error) {
	if !strings.Contains(src, "{{") {
		return src, nil
	}
	tmpl, err := template.New("question").Parse(src)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}
