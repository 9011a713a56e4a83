package mapper

import (
	"time"

	"thinkora-be/internal/entity"
	"thinkora-be/internal/model"
)

type CourseMapper struct{}

func NewCourseMapper() *CourseMapper {
	return &CourseMapper{}
}

func (m *CourseMapper) CourseToEntity(c *model.Course) *entity.Course {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Course{
		Id:           c.Id,
		UserId:       c.UserId,
		CourseName:   c.CourseName,
		Credits:      c.Credits,
		LetterGrade:  c.LetterGrade,
		SemesterYear: c.SemesterYear,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *CourseMapper) CourseToModel(c *entity.Course) *model.Course {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Course{
		Id:           c.Id,
		UserId:       c.UserId,
		CourseName:   c.CourseName,
		Credits:      c.Credits,
		LetterGrade:  c.LetterGrade,
		SemesterYear: c.SemesterYear,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
