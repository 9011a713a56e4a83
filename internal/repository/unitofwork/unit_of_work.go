package unitofwork

import (
	"context"

	"thinkora-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CourseRepository() contract.CourseRepository
	ChatTurnRepository() contract.ChatTurnRepository
}
