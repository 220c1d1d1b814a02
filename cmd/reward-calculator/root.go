package main

import (
	"errors"
	"fmt"

	"github.com/iwvelando/reward-calculator/internal/config"
	"github.com/iwvelando/reward-calculator/internal/reward"
	"github.com/iwvelando/reward-calculator/internal/selftest"
	"github.com/iwvelando/reward-calculator/internal/shell"
	"github.com/iwvelando/reward-calculator/pkg/constants"
	"github.com/iwvelando/reward-calculator/pkg/output"
	"github.com/iwvelando/reward-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all commands of one invocation.
type app struct {
	configPath   string
	logLevel     string
	outputFormat string
	printConfig  bool

	conf   *config.Configuration
	logger *zap.Logger
	calc   *reward.Calculator
}

// close flushes the logger, if one was built.
func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// setup loads the configuration and builds the logger. It runs before
// every command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	conf, err := config.LoadConfiguration(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", a.configPath, err)
	}
	a.conf = conf

	logger, err := initializeLogger(conf.Logging, a.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	// CLI override takes precedence over config
	if a.outputFormat != "" {
		a.conf.Output.Format = a.outputFormat
	}
	if a.conf.Output.Format == "" {
		a.conf.Output.Format = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(a.conf.Output.Format); err != nil {
		return err
	}

	a.calc = reward.DefaultCalculator()
	a.logger.Debug("configuration loaded",
		zap.String("op", "main.setup"),
		zap.String("config", a.configPath),
		zap.String("outputFormat", a.conf.Output.Format),
		zap.Int("maxRetries", a.conf.Shell.MaxRetries),
		zap.Bool("strictCaseType", a.conf.Shell.StrictCaseType),
	)
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "reward-calculator",
		Short: "Calculate the reward owed to an informant",
		Long: `Calculate the monetary reward owed to an informant from the case type,
offence severity, information value, damage amount and participation
coefficient. The reward is clamped to the legislated range of 5000 to
1000000 roubles.

Without a subcommand an interactive menu is shown.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runInteractive,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	root.Flags().BoolVar(&a.printConfig, "print-config", false, "print the effective configuration and exit")

	root.AddCommand(newCalcCmd(a), newSelfTestCmd(a))
	return root
}

func (a *app) runInteractive(cmd *cobra.Command, _ []string) error {
	if a.printConfig {
		out, err := a.conf.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}

	s := shell.New(shell.Options{
		MaxRetries:     a.conf.Shell.MaxRetries,
		StrictCaseType: a.conf.Shell.StrictCaseType,
	}, a.calc, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger)

	if err := s.Run(cmd.Context()); err != nil {
		return fmt.Errorf("interactive session ended: %w", err)
	}
	return nil
}

func newCalcCmd(a *app) *cobra.Command {
	var data reward.InputData

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run a single calculation from flags",
		Long: `Run a single calculation without prompting. Values are checked with the
same rules as the interactive mode; a violation is an error instead of a
re-prompt. The result is written in the configured output format.`,
		Example: `  reward-calculator calc --type уголовное --severity 1 --damage 500000 --info-value 3 --part-coeff 0.8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCalc(cmd, data)
		},
	}

	cmd.Flags().StringVar(&data.ProductionType, "type", "", "production type (уголовное, административное, гражданское)")
	cmd.Flags().IntVar(&data.Severity, "severity", 0, "offence severity (1-5)")
	cmd.Flags().Float64Var(&data.DamageAmount, "damage", 0, "damage amount in roubles (>= 0)")
	cmd.Flags().IntVar(&data.InfoValue, "info-value", 0, "information value (1-5)")
	cmd.Flags().Float64Var(&data.PartCoeff, "part-coeff", 0, "participation coefficient (0.1-1.0)")
	for _, name := range []string{"type", "severity", "damage", "info-value", "part-coeff"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (a *app) runCalc(cmd *cobra.Command, data reward.InputData) error {
	if err := validation.ValidateFields(data.Severity, data.DamageAmount, data.InfoValue, data.PartCoeff); err != nil {
		return err
	}

	if _, ok := reward.ParseCaseType(data.ProductionType); !ok {
		if a.conf.Shell.StrictCaseType {
			_, err := reward.ParseCaseTypeStrict(data.ProductionType)
			return err
		}
		a.logger.Warn("unrecognized production type, applying civil base rate",
			zap.String("op", "main.runCalc"),
			zap.String("productionType", data.ProductionType),
		)
	}

	res := a.calc.Calculate(data)
	a.logger.Info("calculation completed",
		zap.String("op", "main.runCalc"),
		zap.String("caseType", res.CaseType.String()),
		zap.Float64("reward", res.Reward),
		zap.String("clamped", string(res.Clamped)),
	)

	return output.Write(cmd.OutOrStdout(), a.conf.Output.Format, res)
}

// errSelfTestFailed is returned by the selftest command when a case fails.
var errSelfTestFailed = errors.New("self-test failed")

func newSelfTestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in reference calculations",
		Long: `Run the calculator against three reference cases: an unclamped criminal
case and both clamp boundaries. Exits with status 1 if any case fails.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := selftest.Run(a.logger, a.calc, nil)
			report.Print(cmd.OutOrStdout())
			if !report.Passed() {
				return fmt.Errorf("%w: %d of %d cases", errSelfTestFailed, report.Failed(), len(report.Outcomes))
			}
			return nil
		},
	}
}
