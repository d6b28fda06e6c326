package output

import (
	"bytes"
	_ "embed"
	"html/template"
)

// HTMLFormatter renders the button table as a keypad grid, followed by any
// keypad transcript.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/keypad.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("keypad").Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
