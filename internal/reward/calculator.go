// Package reward computes the monetary reward owed to an informant from the
// case category, the offence severity, the value of the information, the
// damage amount and the informant's participation coefficient.
package reward

import (
	"fmt"

	"github.com/iwvelando/reward-calculator/pkg/constants"
	"github.com/iwvelando/reward-calculator/pkg/format"
	"github.com/iwvelando/reward-calculator/pkg/mathutil"
	"github.com/iwvelando/reward-calculator/pkg/messages"
)

// InputData holds the parameters of a single calculation request.
type InputData struct {
	ProductionType string
	Severity       int     // 1..5
	DamageAmount   float64 // roubles, >= 0
	InfoValue      int     // 1..5
	PartCoeff      float64 // 0.1..1.0
}

// CalculationResult holds the outcome of a calculation.
type CalculationResult struct {
	Reward      float64
	Percent     float64 // corrected rate as a fraction, not clamped
	CategoryMsg string
	CoeffMsg    string

	CaseType     CaseType
	BasePercent  float64
	SeverityMult float64
	ValueMult    float64
	RawReward    float64
	Clamped      mathutil.ClampResult
}

// Limits bounds the reward paid out.
type Limits struct {
	Min float64
	Max float64
}

// DefaultLimits returns the legislated reward limits.
func DefaultLimits() Limits {
	return Limits{Min: constants.MinReward, Max: constants.MaxReward}
}

// Validate checks that the limits describe a usable range.
func (l Limits) Validate() error {
	if l.Min < 0 {
		return fmt.Errorf("minimum reward must not be negative, got %.2f", l.Min)
	}
	if l.Min > l.Max {
		return fmt.Errorf("minimum reward %.2f exceeds maximum reward %.2f", l.Min, l.Max)
	}
	return nil
}

// Calculator applies the reward formula with a fixed clamp policy.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	limits Limits
}

// NewCalculator returns a Calculator clamping rewards to limits.
func NewCalculator(limits Limits) *Calculator {
	return &Calculator{limits: limits}
}

// DefaultCalculator returns a Calculator using the legislated limits.
func DefaultCalculator() *Calculator {
	return NewCalculator(DefaultLimits())
}

// Limits returns the clamp policy of the calculator.
func (c *Calculator) Limits() Limits {
	return c.limits
}

// SeverityMultiplier scales the base rate linearly from 1.0 at severity 1
// to 1.8 at severity 5.
func SeverityMultiplier(severity int) float64 {
	return 1.0 + float64(severity-constants.MinSeverity)*constants.SeverityStep
}

// ValueMultiplier scales the rate by information value; 3 is neutral.
func ValueMultiplier(infoValue int) float64 {
	return float64(infoValue) / constants.InfoValueNeutral
}

// Calculate computes the reward for data. Inputs are assumed to be within
// their documented ranges; no checks are made here.
func (c *Calculator) Calculate(data InputData) CalculationResult {
	var res CalculationResult

	res.CaseType, _ = ParseCaseType(data.ProductionType)
	res.BasePercent = res.CaseType.BasePercent()
	res.CategoryMsg = messages.Get(messages.CategoryLine, data.ProductionType)

	res.SeverityMult = SeverityMultiplier(data.Severity)
	p1 := res.BasePercent * res.SeverityMult

	res.ValueMult = ValueMultiplier(data.InfoValue)
	res.Percent = p1 * res.ValueMult

	res.RawReward = data.DamageAmount * res.Percent * data.PartCoeff
	res.Reward, res.Clamped = mathutil.Clamp(res.RawReward, c.limits.Min, c.limits.Max)

	res.CoeffMsg = messages.Get(messages.CoefficientLine,
		format.Coefficient(res.ValueMult), format.Coefficient(data.PartCoeff))

	return res
}

// Calculate computes the reward for data using the legislated limits.
func Calculate(data InputData) CalculationResult {
	return DefaultCalculator().Calculate(data)
}
