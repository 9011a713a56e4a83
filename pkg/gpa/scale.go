// FILE: pkg/gpa/scale.go
// PURPOSE: The 5.00 grading scale and degree classification bands
package gpa

import (
	"strings"

	"github.com/shopspring/decimal"
)

// The Nigerian 5.00 scale. No plus/minus modifiers: anything outside
// this six-symbol set simply has no point value.
var gradePoints = map[string]decimal.Decimal{
	"A": decimal.NewFromInt(5),
	"B": decimal.NewFromInt(4),
	"C": decimal.NewFromInt(3),
	"D": decimal.NewFromInt(2),
	"E": decimal.NewFromInt(1),
	"F": decimal.NewFromInt(0),
}

// classificationBand maps a lower GPA bound (inclusive) to its label.
// Evaluated highest-to-lowest, first match wins.
type classificationBand struct {
	Min   decimal.Decimal
	Label string
}

var classificationBands = []classificationBand{
	{decimal.RequireFromString("4.50"), "First Class"},
	{decimal.RequireFromString("3.50"), "Second Class Upper"},
	{decimal.RequireFromString("2.50"), "Second Class Lower"},
	{decimal.RequireFromString("1.50"), "Third Class"},
	{decimal.RequireFromString("1.00"), "Pass"},
}

// PointsFor returns the point value for a letter grade. The symbol is
// trimmed and uppercased before lookup. ok is false for symbols outside
// the scale; callers are expected to skip those, not fail.
func PointsFor(grade string) (decimal.Decimal, bool) {
	points, ok := gradePoints[strings.ToUpper(strings.TrimSpace(grade))]
	return points, ok
}

// Classify maps a GPA on [0, 5] to its degree classification label.
func Classify(gpa decimal.Decimal) string {
	for _, band := range classificationBands {
		if gpa.GreaterThanOrEqual(band.Min) {
			return band.Label
		}
	}
	return "Fail"
}

// KnownGrades returns the grade symbols of the scale in descending
// point order, for help/guidance messages.
func KnownGrades() []string {
	return []string{"A", "B", "C", "D", "E", "F"}
}
