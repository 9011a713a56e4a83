package service

import (
	"testing"

	"thinkora-be/internal/dto"
	"thinkora-be/pkg/gpa"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGpaServiceCalculate(t *testing.T) {
	svc := NewGpaService(nil)

	res, err := svc.Calculate(&dto.CalculateGpaRequest{
		Grades:  []string{"A", "B"},
		Credits: []float64{3, 4},
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 4.43, res.Gpa)
	assert.Equal(t, 7.0, res.TotalCredits)
	assert.Equal(t, 31.0, res.TotalPoints)
	assert.Equal(t, "Second Class Upper", res.Classification)
	assert.Equal(t, 2, res.GradesCount)
}

func TestGpaServiceCalculateSkipsUnknownGrades(t *testing.T) {
	svc := NewGpaService(nil)

	res, err := svc.Calculate(&dto.CalculateGpaRequest{
		Grades:  []string{"A", "X", "B"},
		Credits: []float64{3, 2, 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.GradesCount)
	assert.Equal(t, 7.0, res.TotalCredits)
}

func TestGpaServiceCalculateValidation(t *testing.T) {
	svc := NewGpaService(nil)

	cases := []struct {
		name    string
		req     *dto.CalculateGpaRequest
		wantErr error
	}{
		{
			name:    "empty input",
			req:     &dto.CalculateGpaRequest{},
			wantErr: gpa.ErrNoInput,
		},
		{
			name: "length mismatch",
			req: &dto.CalculateGpaRequest{
				Grades:  []string{"A", "B"},
				Credits: []float64{3},
			},
			wantErr: gpa.ErrLengthMismatch,
		},
		{
			name: "only unknown grades",
			req: &dto.CalculateGpaRequest{
				Grades:  []string{"X", "Z"},
				Credits: []float64{3, 4},
			},
			wantErr: gpa.ErrNoValidGrades,
		},
		{
			name: "negative credit weight",
			req: &dto.CalculateGpaRequest{
				Grades:  []string{"A", "F"},
				Credits: []float64{3, -2},
			},
			wantErr: gpa.ErrNegativeCredits,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Calculate(tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
