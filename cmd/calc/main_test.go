package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestArithmeticCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "0.1", "0.2"}, "0.3\n"},
		{[]string{"subtract", "1", "3"}, "-2\n"},
		{[]string{"multiply", "1.5", "4"}, "6\n"},
		{[]string{"divide", "1", "3"}, "0.333333333333333\n"},
		{[]string{"divide", "1", "0"}, "Not a number\n"},
		{[]string{"add", "abc", "1"}, "Not a number\n"},
		{[]string{"negate", "--", "-5"}, "5\n"},
		{[]string{"percent", "50"}, "0.5\n"},
		{[]string{"cumulate", "", "3", "--mode", "START"}, "3\n"},
		{[]string{"cumulate", "3.0", "5", "-m", "CUMUL_DECIMAL"}, "3.05\n"},
		{[]string{"cumulate", "3", "5"}, "35\n"},
		{[]string{"press", "2+3*4="}, "14\n"},
		{[]string{"press", "5", "0", "%"}, "0.5\n"},
	}
	for _, tt := range tests {
		out, _, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, out, "%v", tt.args)
	}
}

func TestPrecisionFlags(t *testing.T) {
	out, _, err := run(t, "divide", "2", "3", "--decimal-places", "2")
	require.NoError(t, err)
	assert.Equal(t, "0.67\n", out)

	out, _, err = run(t, "multiply", "1000", "1000", "--exponential-at", "6")
	require.NoError(t, err)
	assert.Equal(t, "1e+6\n", out)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("CALC_PRECISION_DECIMAL_PLACES", "1")
	out, _, err := run(t, "divide", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.3\n", out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("precision:\n  decimal_places: 3\noutput:\n  format: json\n"), 0o644))

	out, _, err := run(t, "--config", path, "divide", "2", "3")
	require.NoError(t, err)

	var r output.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "0.667", r.Result)

	// flags win over the file
	out, _, err = run(t, "--config", path, "--format", "console", "divide", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "0.667\n", out)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "add", "1", "1")
	assert.ErrorContains(t, err, "failed to load config")
}

func TestInvalidSettings(t *testing.T) {
	_, _, err := run(t, "--log-level", "trace", "add", "1", "1")
	assert.ErrorContains(t, err, "invalid level")

	_, _, err = run(t, "--format", "pdf", "add", "1", "1")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, _, err = run(t, "cumulate", "1", "2", "--mode", "APPEND")
	assert.ErrorContains(t, err, "unknown mode")

	_, _, err = run(t, "press", "2x")
	assert.ErrorContains(t, err, "unknown key")

	_, _, err = run(t, "add", "1")
	assert.Error(t, err)
}

func TestButtonsCommand(t *testing.T) {
	out, _, err := run(t, "buttons", "--format", "json")
	require.NoError(t, err)
	var r output.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Len(t, r.Buttons, 19)

	out, _, err = run(t, "buttons", "--shortcut", "Enter", "-f", "json")
	require.NoError(t, err)
	r = output.Report{}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Len(t, r.Buttons, 1)
	assert.Equal(t, "equal", r.Buttons[0].Value)

	_, _, err = run(t, "buttons", "--value", "sqrt")
	assert.ErrorContains(t, err, "no button matches")
}

func TestPressSteps(t *testing.T) {
	out, _, err := run(t, "press", "1+1=", "--steps", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "step,add,,,,,,1\n")
	assert.Contains(t, out, "result,,,,,,,2\n")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "divide", "1", "0")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"configuration loaded"`)
	assert.Contains(t, stderr, "is not finite")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "calc dev\n", out)
}
