// FILE: internal/entity/course_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Course is one graded course a user has entered. Credits carry one
// decimal place (e.g. 3.0, 4.5) and weight the letter grade in GPA math.
type Course struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	CourseName   string
	Credits      decimal.Decimal
	LetterGrade  string
	SemesterYear *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
