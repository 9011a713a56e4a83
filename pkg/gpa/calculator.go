// FILE: pkg/gpa/calculator.go
// PURPOSE: Pure weighted-GPA computation over parallel grade/credit lists
package gpa

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError marks bad calculator input. It is never fatal; the HTTP
// layer maps it to a 400 with the message as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNoInput         = &ValidationError{Message: "no input"}
	ErrLengthMismatch  = &ValidationError{Message: "length mismatch"}
	ErrNoValidGrades   = &ValidationError{Message: "no valid grades"}
	ErrNegativeCredits = &ValidationError{Message: "negative credits"}
)

// Result is the outcome of one GPA calculation. Computed fresh per call,
// never persisted.
type Result struct {
	GPA            decimal.Decimal
	TotalCredits   decimal.Decimal
	TotalPoints    decimal.Decimal
	Classification string
	GradeCount     int
	GradesUsed     []string
}

// Calculate computes the credit-weighted GPA for parallel grade/credit
// lists. Each (grades[i], credits[i]) pair is one course. Unrecognized
// grade symbols are skipped silently; they only become an error when
// nothing usable remains. GPA and total points are rounded half-up to
// 2 decimal places.
//
// Pure function: no state, safe for concurrent use.
func Calculate(grades []string, credits []decimal.Decimal) (*Result, error) {
	if len(grades) == 0 || len(credits) == 0 {
		return nil, ErrNoInput
	}
	if len(grades) != len(credits) {
		return nil, ErrLengthMismatch
	}

	// Negative weights would push the GPA outside [0, 5]; reject them
	// before anything is accumulated.
	for _, credit := range credits {
		if credit.IsNegative() {
			return nil, ErrNegativeCredits
		}
	}

	totalPoints := decimal.Zero
	totalCredits := decimal.Zero
	var used []string

	for i, grade := range grades {
		points, ok := PointsFor(grade)
		if !ok {
			continue
		}
		totalPoints = totalPoints.Add(points.Mul(credits[i]))
		totalCredits = totalCredits.Add(credits[i])
		used = append(used, strings.ToUpper(strings.TrimSpace(grade)))
	}

	// Guard the division: zero usable credit weight is an explicit error,
	// never a NaN/Inf GPA.
	if !totalCredits.IsPositive() {
		return nil, ErrNoValidGrades
	}

	gpa := totalPoints.Div(totalCredits).Round(2)

	return &Result{
		GPA:            gpa,
		TotalCredits:   totalCredits,
		TotalPoints:    totalPoints.Round(2),
		Classification: Classify(gpa),
		GradeCount:     len(used),
		GradesUsed:     used,
	}, nil
}
