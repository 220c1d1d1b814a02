// Package selftest runs the calculator against fixed reference cases and
// reports whether each one produced the expected reward.
package selftest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/iwvelando/reward-calculator/internal/reward"
	"github.com/iwvelando/reward-calculator/pkg/constants"
	"github.com/iwvelando/reward-calculator/pkg/mathutil"
	"github.com/iwvelando/reward-calculator/pkg/messages"
	"go.uber.org/zap"
)

// Case is a reference calculation with its expected reward.
type Case struct {
	Name      string
	Input     reward.InputData
	Expected  float64
	Tolerance float64 // 0 requires exact equality
	// ShowExpected includes the expected value in the failure line.
	ShowExpected bool
}

// Outcome is the evaluation of one Case.
type Outcome struct {
	Case   Case
	Got    float64
	Passed bool
}

// Report collects the outcomes of a run in fixture order.
type Report struct {
	Outcomes []Outcome
}

// Fixtures returns the reference cases: an unclamped criminal case and the
// two clamp boundaries.
func Fixtures() []Case {
	return []Case{
		{
			// 0.10 * 1.0 * (3/3) = 10%; 500000 * 0.10 * 0.8 = 40000.
			Name:         messages.Get(messages.SelfTestCriminal),
			Input:        reward.InputData{ProductionType: "уголовное", Severity: 1, DamageAmount: 500000, InfoValue: 3, PartCoeff: 0.8},
			Expected:     40000,
			Tolerance:    constants.ToleranceForComparison,
			ShowExpected: true,
		},
		{
			Name:     messages.Get(messages.SelfTestMinimum),
			Input:    reward.InputData{ProductionType: "гражданское", Severity: 1, DamageAmount: 1000, InfoValue: 1, PartCoeff: 0.1},
			Expected: constants.MinReward,
		},
		{
			Name:     messages.Get(messages.SelfTestMaximum),
			Input:    reward.InputData{ProductionType: "уголовное", Severity: 5, DamageAmount: 100000000, InfoValue: 5, PartCoeff: 1.0},
			Expected: constants.MaxReward,
		},
	}
}

// Evaluate runs a single case.
func Evaluate(calc *reward.Calculator, c Case) Outcome {
	got := calc.Calculate(c.Input).Reward
	passed := got == c.Expected
	if c.Tolerance > 0 {
		passed = mathutil.WithinTolerance(got, c.Expected, c.Tolerance)
	}
	return Outcome{Case: c, Got: got, Passed: passed}
}

// Run evaluates cases with calc. A nil calc uses the legislated limits; nil
// cases uses Fixtures.
func Run(logger *zap.Logger, calc *reward.Calculator, cases []Case) Report {
	if logger == nil {
		logger = zap.NewNop()
	}
	if calc == nil {
		calc = reward.DefaultCalculator()
	}
	if cases == nil {
		cases = Fixtures()
	}

	var report Report
	for _, c := range cases {
		outcome := Evaluate(calc, c)
		if outcome.Passed {
			logger.Debug(fmt.Sprintf("self-test case %s passed", c.Name),
				zap.String("op", "selftest.Run"),
				zap.Float64("reward", outcome.Got),
			)
		} else {
			logger.Warn(fmt.Sprintf("self-test case %s failed", c.Name),
				zap.String("op", "selftest.Run"),
				zap.Float64("expected", c.Expected),
				zap.Float64("reward", outcome.Got),
			)
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}
	return report
}

// Passed reports whether every outcome passed.
func (r Report) Passed() bool {
	for _, o := range r.Outcomes {
		if !o.Passed {
			return false
		}
	}
	return true
}

// Failed returns the number of failed outcomes.
func (r Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Passed {
			n++
		}
	}
	return n
}

// Line renders the outcome as a single report line.
func (o Outcome) Line() string {
	if o.Passed {
		return messages.Get(messages.SelfTestPassed, o.Case.Name)
	}
	got := strconv.FormatFloat(o.Got, 'g', 6, 64)
	if o.Case.ShowExpected {
		return messages.Get(messages.SelfTestFailedWant, o.Case.Name,
			strconv.FormatFloat(o.Case.Expected, 'f', -1, 64), got)
	}
	return messages.Get(messages.SelfTestFailedGot, o.Case.Name, got)
}

// Print writes the report framed by the header and footer lines.
func (r Report) Print(out io.Writer) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, messages.Get(messages.SelfTestHeader))
	for _, o := range r.Outcomes {
		fmt.Fprintln(out, o.Line())
	}
	fmt.Fprintln(out, messages.Get(messages.SelfTestFooter))
}
