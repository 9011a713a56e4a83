package gpa

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decs(ss ...string) []decimal.Decimal {
	out := make([]decimal.Decimal, len(ss))
	for i, s := range ss {
		out[i] = dec(s)
	}
	return out
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name               string
		grades             []string
		credits            []decimal.Decimal
		wantGPA            string
		wantCredits        string
		wantPoints         string
		wantClassification string
		wantCount          int
	}{
		{
			name:               "two courses weighted",
			grades:             []string{"A", "B"},
			credits:            decs("3", "4"),
			wantGPA:            "4.43", // 31 / 7
			wantCredits:        "7",
			wantPoints:         "31",
			wantClassification: "Second Class Upper",
			wantCount:          2,
		},
		{
			name:               "single A is first class",
			grades:             []string{"A"},
			credits:            decs("3"),
			wantGPA:            "5",
			wantCredits:        "3",
			wantPoints:         "15",
			wantClassification: "First Class",
			wantCount:          1,
		},
		{
			name:               "lowercase and padded symbols",
			grades:             []string{" a ", "b"},
			credits:            decs("3", "4"),
			wantGPA:            "4.43",
			wantCredits:        "7",
			wantPoints:         "31",
			wantClassification: "Second Class Upper",
			wantCount:          2,
		},
		{
			name:               "unknown symbol skipped, rest counted",
			grades:             []string{"A", "Z", "B"},
			credits:            decs("3", "2", "4"),
			wantGPA:            "4.43",
			wantCredits:        "7",
			wantPoints:         "31",
			wantClassification: "Second Class Upper",
			wantCount:          2,
		},
		{
			name:               "all F still computes",
			grades:             []string{"F", "F"},
			credits:            decs("3", "3"),
			wantGPA:            "0",
			wantCredits:        "6",
			wantPoints:         "0",
			wantClassification: "Fail",
			wantCount:          2,
		},
		{
			name:               "half-up rounding at the third decimal",
			grades:             []string{"A", "F"},
			credits:            decs("0.938", "1.062"),
			wantGPA:            "2.35", // 4.69 / 2 = 2.345 rounds up
			wantCredits:        "2",
			wantPoints:         "4.69",
			wantClassification: "Second Class Lower",
			wantCount:          2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.grades, tt.credits)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if !got.GPA.Equal(dec(tt.wantGPA)) {
				t.Errorf("GPA = %s, want %s", got.GPA, tt.wantGPA)
			}
			if !got.TotalCredits.Equal(dec(tt.wantCredits)) {
				t.Errorf("TotalCredits = %s, want %s", got.TotalCredits, tt.wantCredits)
			}
			if !got.TotalPoints.Equal(dec(tt.wantPoints)) {
				t.Errorf("TotalPoints = %s, want %s", got.TotalPoints, tt.wantPoints)
			}
			if got.Classification != tt.wantClassification {
				t.Errorf("Classification = %q, want %q", got.Classification, tt.wantClassification)
			}
			if got.GradeCount != tt.wantCount {
				t.Errorf("GradeCount = %d, want %d", got.GradeCount, tt.wantCount)
			}
		})
	}
}

func TestCalculateErrors(t *testing.T) {
	tests := []struct {
		name    string
		grades  []string
		credits []decimal.Decimal
		wantErr *ValidationError
	}{
		{"empty input", nil, nil, ErrNoInput},
		{"empty grades", nil, decs("3"), ErrNoInput},
		{"length mismatch", []string{"A", "B"}, decs("3"), ErrLengthMismatch},
		{"only unknown symbols", []string{"Z"}, decs("3"), ErrNoValidGrades},
		{"zero credit weight", []string{"A"}, decs("0"), ErrNoValidGrades},
		{"negative credit weight", []string{"A", "F"}, decs("3", "-2"), ErrNegativeCredits},
		{"negative credit on skipped symbol", []string{"A", "Z"}, decs("3", "-2"), ErrNegativeCredits},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.grades, tt.credits)
			if err == nil {
				t.Fatal("Calculate() expected error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if verr.Message != tt.wantErr.Message {
				t.Errorf("error = %q, want %q", verr.Message, tt.wantErr.Message)
			}
		})
	}
}

func TestCalculateStaysOnScale(t *testing.T) {
	tests := []struct {
		name    string
		grades  []string
		credits []decimal.Decimal
	}{
		{"all top grades", []string{"A", "A", "A"}, decs("3", "2", "4")},
		{"mixed grades", []string{"A", "F", "C"}, decs("3", "2", "4")},
		{"tiny weights", []string{"A", "B"}, decs("0.001", "0.002")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.grades, tt.credits)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if got.GPA.IsNegative() || got.GPA.GreaterThan(dec("5")) {
				t.Errorf("GPA = %s, outside [0, 5]", got.GPA)
			}
		})
	}
}

func TestCalculateIsPure(t *testing.T) {
	grades := []string{"A", "B", "C"}
	credits := decs("3", "2", "4")

	first, err := Calculate(grades, credits)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	second, err := Calculate(grades, credits)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if !first.GPA.Equal(second.GPA) || first.Classification != second.Classification ||
		first.GradeCount != second.GradeCount {
		t.Errorf("repeated calls diverged: %+v vs %+v", first, second)
	}
}
