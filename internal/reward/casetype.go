package reward

import (
	"errors"
	"fmt"

	"github.com/iwvelando/reward-calculator/pkg/constants"
)

// ErrUnknownCaseType is returned by ParseCaseTypeStrict for input that names
// none of the known case categories.
var ErrUnknownCaseType = errors.New("unknown case type")

// CaseType enumerates the case categories a reward can be claimed for.
type CaseType int

const (
	// CaseUnknown is any production type that is not recognized. It is
	// rated like a civil case.
	CaseUnknown CaseType = iota
	CaseCriminal
	CaseAdministrative
	CaseCivil
)

// caseSpellings lists the accepted spellings per category: lowercase and
// capitalized. Matching is exact, no further normalization is applied.
var caseSpellings = map[string]CaseType{
	"уголовное":        CaseCriminal,
	"Уголовное":        CaseCriminal,
	"административное": CaseAdministrative,
	"Административное": CaseAdministrative,
	"гражданское":      CaseCivil,
	"Гражданское":      CaseCivil,
}

var baseRates = map[CaseType]float64{
	CaseCriminal:       constants.CriminalBasePercent,
	CaseAdministrative: constants.AdministrativeBasePercent,
	CaseCivil:          constants.CivilBasePercent,
	CaseUnknown:        constants.CivilBasePercent,
}

// ParseCaseType maps a production type string to its CaseType. The second
// return value is false when the input is not recognized, in which case
// CaseUnknown is returned.
func ParseCaseType(productionType string) (CaseType, bool) {
	ct, ok := caseSpellings[productionType]
	if !ok {
		return CaseUnknown, false
	}
	return ct, true
}

// ParseCaseTypeStrict is ParseCaseType for callers that treat unrecognized
// input as an error.
func ParseCaseTypeStrict(productionType string) (CaseType, error) {
	ct, ok := ParseCaseType(productionType)
	if !ok {
		return CaseUnknown, fmt.Errorf("%w: %q", ErrUnknownCaseType, productionType)
	}
	return ct, nil
}

// BasePercent returns the base rate of the case type.
func (c CaseType) BasePercent() float64 {
	return baseRates[c]
}

// String returns the canonical lowercase name of the case type.
func (c CaseType) String() string {
	switch c {
	case CaseCriminal:
		return "criminal"
	case CaseAdministrative:
		return "administrative"
	case CaseCivil:
		return "civil"
	default:
		return "unknown"
	}
}

// GetBasePercent returns the base rate for a raw production type string:
// 0.10 criminal, 0.05 administrative, 0.03 civil or anything unrecognized.
func GetBasePercent(productionType string) float64 {
	ct, _ := ParseCaseType(productionType)
	return ct.BasePercent()
}
