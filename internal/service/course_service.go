package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"thinkora-be/internal/dto"
	"thinkora-be/internal/entity"
	"thinkora-be/internal/repository/specification"
	"thinkora-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrCourseNotFound = errors.New("course not found")

type ICourseService interface {
	GetAll(ctx context.Context, userID uuid.UUID) ([]*dto.CourseResponse, error)
	Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	Update(ctx context.Context, userID, courseID uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error)
	Delete(ctx context.Context, userID, courseID uuid.UUID) error
}

type courseService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCourseService(uowFactory unitofwork.RepositoryFactory) ICourseService {
	return &courseService{
		uowFactory: uowFactory,
	}
}

func (s *courseService) GetAll(ctx context.Context, userID uuid.UUID) ([]*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	courses, err := uow.CourseRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userID},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CourseResponse, len(courses))
	for i, course := range courses {
		res[i] = toCourseResponse(course)
	}
	return res, nil
}

func (s *courseService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course := &entity.Course{
		Id:          uuid.New(),
		UserId:      userID,
		CourseName:  strings.TrimSpace(req.CourseName),
		Credits:     decimal.NewFromFloat(req.Credits),
		LetterGrade: strings.ToUpper(strings.TrimSpace(req.LetterGrade)),
		CreatedAt:   time.Now(),
	}
	if req.SemesterYear != "" {
		semester := req.SemesterYear
		course.SemesterYear = &semester
	}

	if err := uow.CourseRepository().Create(ctx, course); err != nil {
		return nil, err
	}

	return toCourseResponse(course), nil
}

func (s *courseService) Update(ctx context.Context, userID, courseID uuid.UUID, req *dto.UpdateCourseRequest) (*dto.CourseResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx,
		specification.ByID{ID: courseID},
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	now := time.Now()
	course.CourseName = strings.TrimSpace(req.CourseName)
	course.Credits = decimal.NewFromFloat(req.Credits)
	course.LetterGrade = strings.ToUpper(strings.TrimSpace(req.LetterGrade))
	course.UpdatedAt = &now
	if req.SemesterYear != "" {
		semester := req.SemesterYear
		course.SemesterYear = &semester
	} else {
		course.SemesterYear = nil
	}

	if err := uow.CourseRepository().Update(ctx, course); err != nil {
		return nil, err
	}

	return toCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, userID, courseID uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	course, err := uow.CourseRepository().FindOne(ctx,
		specification.ByID{ID: courseID},
		specification.UserOwnedBy{UserID: userID},
	)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}

	return uow.CourseRepository().Delete(ctx, course.Id)
}

func toCourseResponse(course *entity.Course) *dto.CourseResponse {
	res := &dto.CourseResponse{
		Id:          course.Id,
		CourseName:  course.CourseName,
		Credits:     course.Credits.InexactFloat64(),
		LetterGrade: course.LetterGrade,
		CreatedAt:   course.CreatedAt,
		UpdatedAt:   course.UpdatedAt,
	}
	if course.SemesterYear != nil {
		res.SemesterYear = *course.SemesterYear
	}
	return res
}
