package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/iwvelando/reward-calculator/internal/config"
	"github.com/iwvelando/reward-calculator/internal/reward"
	"github.com/iwvelando/reward-calculator/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	absent := filepath.Join(t.TempDir(), "absent.yaml")
	args = append([]string{"--config", absent, "--log-level", "error"}, args...)

	a := &app{}
	defer a.close()
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestInteractiveSession(t *testing.T) {
	out, err := execute(t, "1\nуголовное\n1\n500000\n3\n0.8\n2\n3\n")
	require.NoError(t, err)

	assert.Contains(t, out, "Размер вознаграждения: 40000.00 руб.")
	assert.Contains(t, out, "Процент от суммы (расчетный): 10.00%")
	assert.Equal(t, 3, strings.Count(out, "ПРОЙДЕН"))
	assert.True(t, strings.HasSuffix(out, "Завершение работы программы...\n\n"))
}

func TestInteractiveSessionClosedInput(t *testing.T) {
	out, err := execute(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Завершение работы программы...")
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name: "pretty",
			args: []string{"calc", "--type", "уголовное", "--severity", "1", "--damage", "500000", "--info-value", "3", "--part-coeff", "0.8"},
			contains: []string{
				"Размер вознаграждения: 40000.00 руб.",
				"Категория дела: уголовное",
			},
		},
		{
			name:     "csv",
			args:     []string{"--output-format", "csv", "calc", "--type", "гражданское", "--severity", "1", "--damage", "1000", "--info-value", "1", "--part-coeff", "0.1"},
			contains: []string{`"5000.00","1.00"`},
		},
		{
			name:     "unknown type falls back to civil",
			args:     []string{"calc", "--type", "прочее", "--severity", "1", "--damage", "1000000", "--info-value", "3", "--part-coeff", "1"},
			contains: []string{"Размер вознаграждения: 30000.00 руб."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCalcCommandJSON(t *testing.T) {
	out, err := execute(t, "", "--output-format", "json", "calc",
		"--type", "уголовное", "--severity", "5", "--damage", "100000000", "--info-value", "5", "--part-coeff", "1.0")
	require.NoError(t, err)

	var decoded struct {
		Reward  float64 `json:"reward"`
		Clamped string  `json:"clamped"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1000000.0, decoded.Reward)
	assert.Equal(t, "max", decoded.Clamped)
}

func TestCalcCommandRejectsOutOfRange(t *testing.T) {
	_, err := execute(t, "", "calc", "--type", "уголовное", "--severity", "6", "--damage", "-1", "--info-value", "3", "--part-coeff", "0.8")
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrOutOfRange))
	assert.Contains(t, err.Error(), "severity")
	assert.Contains(t, err.Error(), "damage")
}

func TestCalcCommandRequiresFlags(t *testing.T) {
	_, err := execute(t, "", "calc", "--type", "уголовное")
	assert.Error(t, err)
}

func TestCalcCommandStrictCaseType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("shell:\n  strictCaseType: true\n"), 0644))

	a := &app{}
	defer a.close()
	cmd := newRootCmd(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "--log-level", "error", "calc",
		"--type", "семейное", "--severity", "1", "--damage", "1000", "--info-value", "1", "--part-coeff", "0.1"})

	err := cmd.Execute()
	assert.True(t, errors.Is(err, reward.ErrUnknownCaseType))
}

func TestSelfTestCommand(t *testing.T) {
	out, err := execute(t, "", "selftest")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "ПРОЙДЕН"))
	assert.NotContains(t, out, "ПРОВАЛЕН")
}

func TestInvalidOutputFormatOverride(t *testing.T) {
	_, err := execute(t, "", "--output-format", "xml", "selftest")
	assert.Error(t, err)
}

func TestInvalidLogLevelOverride(t *testing.T) {
	a := &app{}
	cmd := newRootCmd(a)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.yaml"), "--log-level", "verbose", "selftest"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Nil(t, a.logger)
}

func TestPrintConfig(t *testing.T) {
	out, err := execute(t, "", "--print-config")
	require.NoError(t, err)
	assert.Contains(t, out, "format: pretty")
	assert.Contains(t, out, "maxRetries: 0")
}

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		conf      config.LoggingConfig
		override  string
		wantError bool
	}{
		{"defaults", config.LoggingConfig{}, "", false},
		{"json", config.LoggingConfig{Level: "info", Format: "json"}, "", false},
		{"override wins", config.LoggingConfig{Level: "bogus"}, "debug", false},
		{"invalid level", config.LoggingConfig{Level: "bogus"}, "", true},
		{"undocumented alias rejected", config.LoggingConfig{}, "warning", true},
		{"invalid format", config.LoggingConfig{Format: "xml"}, "", true},
		{"output file", config.LoggingConfig{OutputFile: filepath.Join(t.TempDir(), "logs", "reward.log")}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.conf, tt.override)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
			_ = logger.Sync()
		})
	}
}
