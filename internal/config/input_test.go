package config

import (
	"os"
	"testing"

	"github.com/rpgo/calculator/pkg/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "precision:\n" +
		"  decimal_places: 4\n" +
		"  exponential_at: 21\n" +
		"logging:\n" +
		"  level: debug\n" +
		"  format: json\n" +
		"output:\n" +
		"  format: yaml\n"

	tmpfile, err := os.CreateTemp("", "test_config_*.yaml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write([]byte(testConfig))
	require.NoError(t, err)
	tmpfile.Close()

	parser := NewInputParser()
	config, err := parser.LoadFromFile(tmpfile.Name())

	require.NoError(t, err)
	assert.Equal(t, decimal.Context{DecimalPlaces: 4, ExponentialAt: 21}, config.Precision)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	assert.Equal(t, "yaml", config.Output.Format)
}

func TestLoadFromFile_Defaults(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte("logging:\n  level: warn\n"))

	require.NoError(t, err)
	assert.Equal(t, decimal.DefaultContext(), config.Precision)
	assert.Equal(t, "warn", config.Logging.Level)
	assert.Equal(t, "console", config.Logging.Format)
	assert.Equal(t, "console", config.Output.Format)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.Parse([]byte("precision: [unterminated"))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		mutate  func(*Configuration)
		wantErr string
	}{
		{"default is valid", func(*Configuration) {}, ""},
		{"negative decimal places", func(c *Configuration) { c.Precision.DecimalPlaces = -1 }, "precision"},
		{"too many decimal places", func(c *Configuration) { c.Precision.DecimalPlaces = 101 }, "at most 100"},
		{"zero exponential threshold", func(c *Configuration) { c.Precision.ExponentialAt = 0 }, "precision"},
		{"bad log level", func(c *Configuration) { c.Logging.Level = "trace" }, "invalid level"},
		{"bad log format", func(c *Configuration) { c.Logging.Format = "xml" }, "invalid format"},
		{"missing output format", func(c *Configuration) { c.Output.Format = "" }, "output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := parser.CreateExampleConfiguration()
			tt.mutate(config)
			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExampleConfigurationRoundTrip(t *testing.T) {
	parser := NewInputParser()
	data, err := yaml.Marshal(parser.CreateExampleConfiguration())
	require.NoError(t, err)
	assert.Contains(t, string(data), "decimal_places: 15")
	assert.Contains(t, string(data), "exponential_at: 17")

	config, err := parser.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, parser.CreateExampleConfiguration(), config)
}
