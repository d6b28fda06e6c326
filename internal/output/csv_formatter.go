package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one row per button, then one row per keypad step, then
// the result. The first column names the section.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"section", "value", "label", "shortcut", "type", "priority", "span", "display"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, b := range r.Buttons {
		row := []string{"button", b.Value, b.Label, b.Shortcut, string(b.Category), string(b.Priority), strconv.Itoa(b.Span), ""}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	for _, s := range r.Steps {
		if err := w.Write([]string{"step", s.Key, "", "", "", "", "", s.Display}); err != nil {
			return nil, err
		}
	}
	if r.Result != "" {
		if err := w.Write([]string{"result", "", "", "", "", "", "", r.Result}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
