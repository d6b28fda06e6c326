package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/rpgo/calculator/internal/domain"
	"github.com/rpgo/calculator/internal/keypad"
)

// ErrUnsupportedFormat is returned for a format name with no formatter.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Report is what the CLI prints: the button table, a keypad transcript, or
// a single result.
type Report struct {
	Buttons []domain.Button `json:"buttons,omitempty" yaml:"buttons,omitempty"`
	Steps   []keypad.Step   `json:"steps,omitempty" yaml:"steps,omitempty"`
	Result  string          `json:"result,omitempty" yaml:"result,omitempty"`
}

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(r *Report) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*Report) ([]byte, error)
}

func (ff FormatterFunc) Format(r *Report) ([]byte, error) { return ff.F(r) }
func (ff FormatterFunc) Name() string                    { return ff.ID }

// WriteFormatted runs a formatter and writes its output to w.
func WriteFormatted(w io.Writer, f Formatter, r *Report) error {
	data, err := f.Format(r)
	if err != nil {
		return fmt.Errorf("%s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReport formats r with the named formatter and writes it to w.
func GenerateReport(w io.Writer, r *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	return WriteFormatted(w, f, r)
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	CSVFormatter{},
	HTMLFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"html-keypad": "html",
	"json-pretty": "json",
	"yml":         "yaml",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
