package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/reward-calculator/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfiguration(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		missing    bool
		wantError  bool
		wantConfig Configuration
	}{
		{
			name:    "Non-existent config file yields defaults",
			missing: true,
			wantConfig: Configuration{
				Logging: LoggingConfig{Level: "warn", Format: "console"},
				Output:  OutputConfig{Format: "pretty"},
			},
		},
		{
			name: "Full config",
			content: `
logging:
  level: debug
  format: json
  outputFile: /tmp/reward.log
output:
  format: csv
shell:
  maxRetries: 3
  strictCaseType: true
`,
			wantConfig: Configuration{
				Logging: LoggingConfig{Level: "debug", Format: "json", OutputFile: "/tmp/reward.log"},
				Output:  OutputConfig{Format: "csv"},
				Shell:   ShellConfig{MaxRetries: 3, StrictCaseType: true},
			},
		},
		{
			name: "Partial config keeps defaults",
			content: `
shell:
  maxRetries: 5
`,
			wantConfig: Configuration{
				Logging: LoggingConfig{Level: "warn", Format: "console"},
				Output:  OutputConfig{Format: "pretty"},
				Shell:   ShellConfig{MaxRetries: 5},
			},
		},
		{
			name: "Invalid log level",
			content: `
logging:
  level: verbose
`,
			wantError: true,
		},
		{
			name: "Undocumented level alias",
			content: `
logging:
  level: warning
`,
			wantError: true,
		},
		{
			name: "Invalid output format",
			content: `
output:
  format: xml
`,
			wantError: true,
		},
		{
			name: "Negative retries",
			content: `
shell:
  maxRetries: -1
`,
			wantError: true,
		},
		{
			name:      "Malformed YAML",
			content:   "logging: [unterminated",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeConfig(t, tt.content)
			}

			conf, err := LoadConfiguration(path)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantConfig, *conf)
		})
	}
}

func TestLoadConfigurationEnvironmentOverride(t *testing.T) {
	t.Setenv("REWARD_LOGGING_LEVEL", "error")
	t.Setenv("REWARD_SHELL_MAXRETRIES", "2")

	conf, err := LoadConfiguration(writeConfig(t, "logging:\n  level: debug\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", conf.Logging.Level)
	assert.Equal(t, 2, conf.Shell.MaxRetries)
}

func TestLoadConfigurationExampleFile(t *testing.T) {
	conf, err := LoadConfiguration(filepath.Join("..", "..", constants.ExampleConfigFile))
	require.NoError(t, err)
	assert.NoError(t, conf.Validate())
	assert.Equal(t, "pretty", conf.Output.Format)
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestYAMLRoundTrip(t *testing.T) {
	conf := Default()
	conf.Shell.MaxRetries = 4

	out, err := conf.YAML()
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "maxRetries: 4"))

	var decoded Configuration
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, *conf, decoded)
}
