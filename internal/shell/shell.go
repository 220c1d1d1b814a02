// Package shell implements the interactive console of the reward calculator:
// a numbered menu that runs manual calculations and the self-test until the
// user chooses to exit.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/iwvelando/reward-calculator/internal/reward"
	"github.com/iwvelando/reward-calculator/internal/selftest"
	"github.com/iwvelando/reward-calculator/pkg/messages"
	"github.com/iwvelando/reward-calculator/pkg/output"
	"github.com/iwvelando/reward-calculator/pkg/validation"
	"go.uber.org/zap"
)

// Menu items.
const (
	ChoiceCalculate = 1
	ChoiceSelfTest  = 2
	ChoiceExit      = 3
)

// Options tunes the input policy of the shell.
type Options struct {
	// MaxRetries bounds the re-prompts per field; 0 means unbounded.
	MaxRetries int
	// StrictCaseType re-prompts for unrecognized production types instead
	// of rating them as civil cases.
	StrictCaseType bool
}

// Shell is the interactive menu loop.
type Shell struct {
	opts     Options
	calc     *reward.Calculator
	prompter *Prompter
	out      io.Writer
	logger   *zap.Logger
}

// New constructs a Shell. A nil calc uses the legislated limits.
func New(opts Options, calc *reward.Calculator, in io.Reader, out io.Writer, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = reward.DefaultCalculator()
	}
	return &Shell{
		opts:     opts,
		calc:     calc,
		prompter: NewPrompter(in, out, opts.MaxRetries),
		out:      out,
		logger:   logger,
	}
}

// Run shows the menu until the user exits or the input is exhausted, both
// of which return nil. A cancelled ctx returns ctx.Err() at the next
// prompt boundary.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.showMenu()
		choice, err := s.prompter.ReadChoice()
		if errors.Is(err, ErrInputClosed) {
			fmt.Fprintln(s.out)
			s.farewell()
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read menu choice: %w", err)
		}

		switch choice {
		case ChoiceCalculate:
			err := s.runCalculatorMode(ctx)
			switch {
			case err == nil:
			case errors.Is(err, ErrInputClosed):
				fmt.Fprintln(s.out)
				s.farewell()
				return nil
			case errors.Is(err, ErrTooManyAttempts):
				s.logger.Warn("calculation aborted",
					zap.String("op", "shell.Run"),
					zap.Error(err),
				)
				fmt.Fprintln(s.out)
				fmt.Fprintln(s.out, messages.Get(messages.TooManyAttempts))
			default:
				return err
			}
		case ChoiceSelfTest:
			s.runTestMode()
		case ChoiceExit:
			s.farewell()
			fmt.Fprintln(s.out)
			return nil
		default:
			s.logger.Debug(fmt.Sprintf("invalid menu choice %d", choice),
				zap.String("op", "shell.Run"),
			)
			fmt.Fprintln(s.out, messages.Get(messages.MenuInvalid))
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) showMenu() {
	fmt.Fprintln(s.out, messages.Get(messages.MenuRule))
	fmt.Fprintln(s.out, messages.Get(messages.MenuTitle))
	fmt.Fprintln(s.out, messages.Get(messages.MenuRule))
	fmt.Fprintln(s.out, messages.Get(messages.MenuCalculate))
	fmt.Fprintln(s.out, messages.Get(messages.MenuSelfTest))
	fmt.Fprintln(s.out, messages.Get(messages.MenuExit))
	fmt.Fprintln(s.out, messages.Get(messages.MenuDivider))
	fmt.Fprint(s.out, messages.Get(messages.MenuPrompt))
}

func (s *Shell) farewell() {
	fmt.Fprintln(s.out, messages.Get(messages.Farewell))
}

// ReadInput prompts for the five calculation fields in order.
func (s *Shell) ReadInput(ctx context.Context) (reward.InputData, error) {
	var d reward.InputData
	var err error

	var validateType func(string) error
	if s.opts.StrictCaseType {
		validateType = func(tok string) error {
			_, err := reward.ParseCaseTypeStrict(tok)
			return err
		}
	}
	d.ProductionType, err = s.prompter.ReadToken(messages.Get(messages.PromptType),
		messages.Get(messages.RetryCaseType), validateType)
	if err != nil {
		return d, fmt.Errorf("production type: %w", err)
	}
	if _, ok := reward.ParseCaseType(d.ProductionType); !ok {
		s.logger.Warn("unrecognized production type, applying civil base rate",
			zap.String("op", "shell.ReadInput"),
			zap.String("productionType", d.ProductionType),
		)
	}

	if err := ctx.Err(); err != nil {
		return d, err
	}
	d.Severity, err = s.prompter.ReadInt(messages.Get(messages.PromptSeverity),
		messages.Get(messages.RetryRange15), validation.ValidateSeverity)
	if err != nil {
		return d, fmt.Errorf("severity: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return d, err
	}
	d.DamageAmount, err = s.prompter.ReadFloat(messages.Get(messages.PromptDamage),
		messages.Get(messages.RetryNonNegative), validation.ValidateDamage)
	if err != nil {
		return d, fmt.Errorf("damage amount: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return d, err
	}
	d.InfoValue, err = s.prompter.ReadInt(messages.Get(messages.PromptInfoValue),
		messages.Get(messages.RetryRange15), validation.ValidateInfoValue)
	if err != nil {
		return d, fmt.Errorf("info value: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return d, err
	}
	d.PartCoeff, err = s.prompter.ReadFloat(messages.Get(messages.PromptPartCoeff),
		messages.Get(messages.RetryPartCoeff), validation.ValidatePartCoeff)
	if err != nil {
		return d, fmt.Errorf("participation coefficient: %w", err)
	}

	return d, nil
}

func (s *Shell) runCalculatorMode(ctx context.Context) error {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, messages.Get(messages.CalcHeader))

	d, err := s.ReadInput(ctx)
	if err != nil {
		return err
	}

	res := s.calc.Calculate(d)
	s.logger.Debug("calculation completed",
		zap.String("op", "shell.runCalculatorMode"),
		zap.String("caseType", res.CaseType.String()),
		zap.Float64("rawReward", res.RawReward),
		zap.Float64("reward", res.Reward),
		zap.String("clamped", string(res.Clamped)),
	)

	output.PrettyFormat(s.out, res)
	return nil
}

func (s *Shell) runTestMode() {
	report := selftest.Run(s.logger, s.calc, nil)
	report.Print(s.out)
}
