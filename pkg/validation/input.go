package validation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/iwvelando/reward-calculator/pkg/constants"
)

// Field rules in validator tag syntax.
var (
	SeverityRule  = fmt.Sprintf("min=%d,max=%d", constants.MinSeverity, constants.MaxSeverity)
	DamageRule    = "gte=0"
	InfoValueRule = fmt.Sprintf("min=%d,max=%d", constants.MinInfoValue, constants.MaxInfoValue)
	PartCoeffRule = fmt.Sprintf("gte=%g,lte=%g", constants.MinPartCoeff, constants.MaxPartCoeff)
)

// ErrOutOfRange wraps every field validation failure.
var ErrOutOfRange = errors.New("value out of range")

var validate = validator.New()

// Validator returns the shared validator instance, for struct validation
// elsewhere in the module.
func Validator() *validator.Validate {
	return validate
}

func check(field string, value interface{}, rule string) error {
	if err := validate.Var(value, rule); err != nil {
		return fmt.Errorf("%w: %s=%v violates %q", ErrOutOfRange, field, value, rule)
	}
	return nil
}

// ValidateSeverity checks the offence severity rating (1..5).
func ValidateSeverity(severity int) error {
	return check("severity", severity, SeverityRule)
}

// ValidateDamage checks the damage amount (finite, >= 0).
func ValidateDamage(damage float64) error {
	if math.IsInf(damage, 0) || math.IsNaN(damage) {
		return fmt.Errorf("%w: damage=%v is not a finite number", ErrOutOfRange, damage)
	}
	return check("damage", damage, DamageRule)
}

// ValidateInfoValue checks the information value rating (1..5).
func ValidateInfoValue(infoValue int) error {
	return check("infoValue", infoValue, InfoValueRule)
}

// ValidatePartCoeff checks the participation coefficient (0.1..1.0).
func ValidatePartCoeff(partCoeff float64) error {
	if math.IsNaN(partCoeff) {
		return fmt.Errorf("%w: partCoeff is not a number", ErrOutOfRange)
	}
	return check("partCoeff", partCoeff, PartCoeffRule)
}

// ValidateFields checks all numeric calculation inputs and reports every
// violation at once.
func ValidateFields(severity int, damage float64, infoValue int, partCoeff float64) error {
	return errors.Join(
		ValidateSeverity(severity),
		ValidateDamage(damage),
		ValidateInfoValue(infoValue),
		ValidatePartCoeff(partCoeff),
	)
}
