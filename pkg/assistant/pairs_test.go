package assistant

import (
	"testing"
)

func TestExtractGradePairs(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    [][2]string // grade, credit
	}{
		{
			name:    "comma separated pairs",
			message: "Calculate GPA: A=3, B=4",
			want:    [][2]string{{"A", "3"}, {"B", "4"}},
		},
		{
			name:    "whitespace around equals",
			message: "my cgpa: a = 3.5 and b =2",
			want:    [][2]string{{"A", "3.5"}, {"B", "2"}},
		},
		{
			name:    "pairs buried in prose",
			message: "last semester I got A=2 then later C=4 somehow",
			want:    [][2]string{{"A", "2"}, {"C", "4"}},
		},
		{
			name:    "letters outside the scale ignored",
			message: "G=3 H=2 A=1",
			want:    [][2]string{{"A", "1"}},
		},
		{
			name:    "equals without number ignored",
			message: "A= B=4",
			want:    [][2]string{{"B", "4"}},
		},
		{
			name:    "trailing dot not consumed",
			message: "A=3.",
			want:    [][2]string{{"A", "3"}},
		},
		{
			name:    "no pairs at all",
			message: "what is my gpa?",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractGradePairs(tt.message)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d pairs, want %d (%v)", len(got), len(tt.want), got)
			}
			for i, want := range tt.want {
				if got[i].Grade != want[0] {
					t.Errorf("pair %d grade = %q, want %q", i, got[i].Grade, want[0])
				}
				if got[i].Credit.String() != want[1] {
					t.Errorf("pair %d credit = %s, want %s", i, got[i].Credit, want[1])
				}
			}
		})
	}
}
