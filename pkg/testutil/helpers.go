// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/reward-calculator/internal/selftest"
)

// FindOutcome finds a self-test outcome by case name in the report.
// Returns a pointer to the outcome if found, nil otherwise.
func FindOutcome(report selftest.Report, name string) *selftest.Outcome {
	for i := range report.Outcomes {
		if report.Outcomes[i].Case.Name == name {
			return &report.Outcomes[i]
		}
	}
	return nil
}
