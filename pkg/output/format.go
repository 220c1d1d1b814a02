// Package output provides utilities for formatting and displaying calculation results.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iwvelando/reward-calculator/internal/reward"
	"github.com/iwvelando/reward-calculator/pkg/constants"
	"github.com/iwvelando/reward-calculator/pkg/format"
	"github.com/iwvelando/reward-calculator/pkg/mathutil"
	"github.com/iwvelando/reward-calculator/pkg/messages"
)

// PrettyFormat writes the human-readable result block.
func PrettyFormat(w io.Writer, res reward.CalculationResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, messages.Get(messages.ResultHeader))
	fmt.Fprintln(w, messages.Get(messages.ResultReward, format.Currency(res.Reward)))
	fmt.Fprintln(w, messages.Get(messages.ResultPercent, format.Percent(res.Percent)))
	fmt.Fprintln(w, res.CategoryMsg)
	fmt.Fprintln(w, res.CoeffMsg)
	fmt.Fprintln(w, messages.Get(messages.ResultFooter))
}

// CsvFormat writes a header row and one value row in comma-separated value format.
func CsvFormat(w io.Writer, res reward.CalculationResult) {
	fmt.Fprintf(w, `"reward","percent","category","coefficients"`)
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, `"%s","%s","%s","%s"`,
		format.Fixed(res.Reward),
		format.Fixed(mathutil.ToPercentage(res.Percent)),
		csvEscape(res.CategoryMsg),
		csvEscape(res.CoeffMsg),
	)
	fmt.Fprintf(w, "\n")
}

func csvEscape(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// jsonResult is the wire shape of a calculation in JSON output.
type jsonResult struct {
	Reward             float64 `json:"reward"`
	Percent            float64 `json:"percent"`
	CategoryMessage    string  `json:"categoryMessage"`
	CoefficientMessage string  `json:"coefficientMessage"`
	CaseType           string  `json:"caseType"`
	BasePercent        float64 `json:"basePercent"`
	SeverityMultiplier float64 `json:"severityMultiplier"`
	ValueMultiplier    float64 `json:"valueMultiplier"`
	RawReward          float64 `json:"rawReward"`
	Clamped            string  `json:"clamped"`
}

// JSONFormat writes the result, including the intermediate factors, as an
// indented JSON object. The reward is rounded to kopecks; rawReward is not.
func JSONFormat(w io.Writer, res reward.CalculationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonResult{
		Reward:             mathutil.Round(res.Reward),
		Percent:            res.Percent,
		CategoryMessage:    res.CategoryMsg,
		CoefficientMessage: res.CoeffMsg,
		CaseType:           res.CaseType.String(),
		BasePercent:        res.BasePercent,
		SeverityMultiplier: res.SeverityMult,
		ValueMultiplier:    res.ValueMult,
		RawReward:          res.RawReward,
		Clamped:            string(res.Clamped),
	})
}

// Write renders res in the named output format.
func Write(w io.Writer, outputFormat string, res reward.CalculationResult) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		PrettyFormat(w, res)
	case constants.OutputFormatCSV:
		CsvFormat(w, res)
	case constants.OutputFormatJSON:
		return JSONFormat(w, res)
	default:
		return fmt.Errorf("unsupported output format %s", outputFormat)
	}
	return nil
}
