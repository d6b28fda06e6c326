package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// ConsoleFormatter renders the report as aligned text tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	if len(r.Buttons) > 0 {
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VALUE\tLABEL\tSHORTCUT\tTYPE\tPRIORITY")
		for _, b := range r.Buttons {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", b.Value, b.Label, orDash(b.Shortcut), b.Category, orDash(string(b.Priority)))
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
	}
	if len(r.Steps) > 0 {
		if buf.Len() > 0 {
			fmt.Fprintln(&buf)
		}
		w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tDISPLAY")
		for _, s := range r.Steps {
			fmt.Fprintf(w, "%s\t%s\n", s.Key, s.Display)
		}
		if err := w.Flush(); err != nil {
			return nil, err
		}
	}
	if r.Result != "" {
		if buf.Len() > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintln(&buf, r.Result)
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
