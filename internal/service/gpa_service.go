package service

import (
	"context"
	"errors"

	"thinkora-be/internal/dto"
	"thinkora-be/internal/repository/specification"
	"thinkora-be/internal/repository/unitofwork"
	"thinkora-be/pkg/gpa"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoCourses = errors.New("no courses to calculate")

type IGpaService interface {
	Calculate(req *dto.CalculateGpaRequest) (*dto.CalculateGpaResponse, error)
	CalculateFromSaved(ctx context.Context, userID uuid.UUID) (*dto.CalculateGpaResponse, error)
}

type gpaService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewGpaService(uowFactory unitofwork.RepositoryFactory) IGpaService {
	return &gpaService{
		uowFactory: uowFactory,
	}
}

func (s *gpaService) Calculate(req *dto.CalculateGpaRequest) (*dto.CalculateGpaResponse, error) {
	credits := make([]decimal.Decimal, len(req.Credits))
	for i, c := range req.Credits {
		credits[i] = decimal.NewFromFloat(c)
	}

	result, err := gpa.Calculate(req.Grades, credits)
	if err != nil {
		return nil, err
	}

	return toGpaResponse(result), nil
}

func (s *gpaService) CalculateFromSaved(ctx context.Context, userID uuid.UUID) (*dto.CalculateGpaResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courses, err := uow.CourseRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if len(courses) == 0 {
		return nil, ErrNoCourses
	}

	grades := make([]string, len(courses))
	credits := make([]decimal.Decimal, len(courses))
	for i, course := range courses {
		grades[i] = course.LetterGrade
		credits[i] = course.Credits
	}

	result, err := gpa.Calculate(grades, credits)
	if err != nil {
		return nil, err
	}

	return toGpaResponse(result), nil
}

func toGpaResponse(result *gpa.Result) *dto.CalculateGpaResponse {
	return &dto.CalculateGpaResponse{
		Success:        true,
		Gpa:            result.GPA.InexactFloat64(),
		TotalCredits:   result.TotalCredits.InexactFloat64(),
		TotalPoints:    result.TotalPoints.InexactFloat64(),
		Classification: result.Classification,
		GradesCount:    result.GradeCount,
	}
}
