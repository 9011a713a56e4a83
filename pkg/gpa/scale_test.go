package gpa

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		grade  string
		want   string
		wantOk bool
	}{
		{"A", "5", true},
		{"B", "4", true},
		{"C", "3", true},
		{"D", "2", true},
		{"E", "1", true},
		{"F", "0", true},
		{"a", "5", true},
		{" b ", "4", true},
		{"A+", "", false},
		{"Z", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.grade, func(t *testing.T) {
			got, ok := PointsFor(tt.grade)
			if ok != tt.wantOk {
				t.Fatalf("PointsFor(%q) ok = %v, want %v", tt.grade, ok, tt.wantOk)
			}
			if ok && !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("PointsFor(%q) = %s, want %s", tt.grade, got, tt.want)
			}
		})
	}
}

// Boundary values belong to the higher band; the bands partition [0, 5]
// with no gaps.
func TestClassify(t *testing.T) {
	tests := []struct {
		gpa  string
		want string
	}{
		{"5.00", "First Class"},
		{"4.50", "First Class"},
		{"4.49", "Second Class Upper"},
		{"3.50", "Second Class Upper"},
		{"3.49", "Second Class Lower"},
		{"2.50", "Second Class Lower"},
		{"2.49", "Third Class"},
		{"1.50", "Third Class"},
		{"1.49", "Pass"},
		{"1.00", "Pass"},
		{"0.99", "Fail"},
		{"0.00", "Fail"},
	}

	for _, tt := range tests {
		t.Run(tt.gpa, func(t *testing.T) {
			if got := Classify(decimal.RequireFromString(tt.gpa)); got != tt.want {
				t.Errorf("Classify(%s) = %q, want %q", tt.gpa, got, tt.want)
			}
		})
	}
}
