package reminder

import (
	"bytes"
	_ "embed"
	"text/template"

	"bloodconnect/pkg/types"
)

//go:embed prompt.tmpl
var promptTmpl string

var promptTemplate = template.Must(template.New("reminder").Option("missingkey=error").Parse(promptTmpl))

// RenderPrompt substitutes every request field verbatim into the reminder
// prompt.
func RenderPrompt(req *types.ReminderRequest) (string, error) {
	var buf bytes.Buffer
	if err := promptTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
