// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/iwvelando/reward-calculator/pkg/constants"
	"github.com/iwvelando/reward-calculator/pkg/validation"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for reward-calculator.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`
	Shell   ShellConfig   `yaml:"shell" mapstructure:"shell"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format     string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=json console"`
	OutputFile string `yaml:"outputFile,omitempty" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=pretty csv json"`
}

// ShellConfig holds the input policy of the interactive shell.
type ShellConfig struct {
	MaxRetries     int  `yaml:"maxRetries" mapstructure:"maxRetries" validate:"gte=0"` // 0 = unbounded
	StrictCaseType bool `yaml:"strictCaseType" mapstructure:"strictCaseType"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Logging: LoggingConfig{
			Level:  constants.DefaultLogLevel,
			Format: constants.DefaultLogFormat,
		},
		Output: OutputConfig{Format: constants.OutputFormatPretty},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.outputFile", def.Logging.OutputFile)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("shell.maxRetries", def.Shell.MaxRetries)
	v.SetDefault("shell.strictCaseType", def.Shell.StrictCaseType)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error: defaults and
// environment overrides (REWARD_LOGGING_LEVEL, REWARD_SHELL_MAXRETRIES, ...)
// apply instead.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %s", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

// Validate checks every field against its allowed values.
func (c *Configuration) Validate() error {
	if err := validation.Validator().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// YAML renders the effective configuration.
func (c *Configuration) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to serialize configuration: %w", err)
	}
	return string(data), nil
}
