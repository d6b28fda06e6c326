package output

import "gopkg.in/yaml.v3"

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(r *Report) ([]byte, error) {
	return yaml.Marshal(r)
}
