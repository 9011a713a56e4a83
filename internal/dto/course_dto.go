package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	CourseName   string  `json:"course_name" validate:"required,min=1,max=100"`
	Credits      float64 `json:"credits" validate:"required,gt=0,lte=10"`
	LetterGrade  string  `json:"letter_grade" validate:"required,oneof=A B C D E F a b c d e f"`
	SemesterYear string  `json:"semester_year" validate:"omitempty,max=20"`
}

type UpdateCourseRequest struct {
	CourseName   string  `json:"course_name" validate:"required,min=1,max=100"`
	Credits      float64 `json:"credits" validate:"required,gt=0,lte=10"`
	LetterGrade  string  `json:"letter_grade" validate:"required,oneof=A B C D E F a b c d e f"`
	SemesterYear string  `json:"semester_year" validate:"omitempty,max=20"`
}

type CourseResponse struct {
	Id           uuid.UUID  `json:"id"`
	CourseName   string     `json:"course_name"`
	Credits      float64    `json:"credits"`
	LetterGrade  string     `json:"letter_grade"`
	SemesterYear string     `json:"semester_year,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}
