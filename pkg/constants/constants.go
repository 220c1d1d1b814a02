// Package constants provides shared constants for the reward-calculator application.
package constants

// Legislated reward limits, in roubles.
const (
	// MinReward is the smallest reward that may be paid out
	MinReward = 5000.0

	// MaxReward is the largest reward that may be paid out
	MaxReward = 1000000.0
)

// Base rates per case category, as a fraction of the damage amount.
const (
	// CriminalBasePercent applies to criminal proceedings
	CriminalBasePercent = 0.10

	// AdministrativeBasePercent applies to administrative proceedings
	AdministrativeBasePercent = 0.05

	// CivilBasePercent applies to civil proceedings and to any unrecognized type
	CivilBasePercent = 0.03
)

// Rating scales
const (
	// MinSeverity and MaxSeverity bound the offence severity rating
	MinSeverity = 1
	MaxSeverity = 5

	// SeverityStep is the multiplier increment per severity point above MinSeverity
	SeverityStep = 0.2

	// MinInfoValue and MaxInfoValue bound the information value rating
	MinInfoValue = 1
	MaxInfoValue = 5

	// InfoValueNeutral is the information value with a multiplier of exactly 1
	InfoValueNeutral = 3.0

	// MinPartCoeff and MaxPartCoeff bound the participation coefficient
	MinPartCoeff = 0.1
	MaxPartCoeff = 1.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "REWARD"
)

// Logging defaults
const (
	// DefaultLogLevel keeps the interactive transcript free of routine entries
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the log encoder used when none is configured
	DefaultLogFormat = "console"
)

// Validation constants
const (
	// ToleranceForComparison is the tolerance for reward comparisons in self-tests
	ToleranceForComparison = 1.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
