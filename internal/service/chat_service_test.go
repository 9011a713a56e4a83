package service

import (
	"context"
	"errors"
	"testing"

	"thinkora-be/internal/constant"
	"thinkora-be/internal/dto"
	"thinkora-be/internal/entity"
	"thinkora-be/internal/repository/contract"
	"thinkora-be/internal/repository/memory"
	"thinkora-be/internal/repository/specification"
	"thinkora-be/internal/repository/unitofwork"
	"thinkora-be/pkg/assistant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyChatTurnRepository stores turns in memory and starts failing Create
// from a configurable call index, so both halves of a chat exchange can be
// made to fail independently.
type flakyChatTurnRepository struct {
	turns    []*entity.ChatTurn
	failFrom int
	calls    int
}

func (r *flakyChatTurnRepository) Create(_ context.Context, turn *entity.ChatTurn) error {
	call := r.calls
	r.calls++
	if call >= r.failFrom {
		return errors.New("insert failed")
	}
	r.turns = append(r.turns, turn)
	return nil
}

func (r *flakyChatTurnRepository) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.ChatTurn, error) {
	return r.turns, nil
}

func (r *flakyChatTurnRepository) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	return int64(len(r.turns)), nil
}

type stubUnitOfWork struct {
	chatTurns contract.ChatTurnRepository
}

func (u *stubUnitOfWork) Begin(context.Context) error { return nil }
func (u *stubUnitOfWork) Commit() error               { return nil }
func (u *stubUnitOfWork) Rollback() error             { return nil }

func (u *stubUnitOfWork) UserRepository() contract.UserRepository     { return nil }
func (u *stubUnitOfWork) CourseRepository() contract.CourseRepository { return nil }
func (u *stubUnitOfWork) ChatTurnRepository() contract.ChatTurnRepository {
	return u.chatTurns
}

type stubRepositoryFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *stubRepositoryFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

func newChatServiceWithRepo(repo *flakyChatTurnRepository) IChatService {
	factory := &stubRepositoryFactory{uow: &stubUnitOfWork{chatTurns: repo}}
	return NewChatService(
		factory,
		memory.NewConversationRepository(),
		assistant.NewRouter(),
		nil,
		nopLogger{},
		"demo@thinkora.local",
		50,
	)
}

func chatUser() *entity.User {
	return &entity.User{
		Id:    uuid.New(),
		Email: "student@thinkora.local",
		Role:  entity.UserRoleUser,
	}
}

func TestChatServiceSendStoresBothTurns(t *testing.T) {
	repo := &flakyChatTurnRepository{failFrom: 100}
	svc := newChatServiceWithRepo(repo)

	res, err := svc.Send(context.Background(), chatUser(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Reply)

	require.Len(t, repo.turns, 2)
	assert.Equal(t, constant.ChatRoleUser, repo.turns[0].Role)
	assert.Equal(t, constant.ChatRoleAi, repo.turns[1].Role)
	assert.Equal(t, repo.turns[0].ConversationId, repo.turns[1].ConversationId)
	assert.Equal(t, repo.turns[1].Id.String(), res.MessageId)
	assert.True(t, repo.turns[1].CreatedAt.After(repo.turns[0].CreatedAt))
}

func TestChatServiceSendSurvivesAssistantTurnFailure(t *testing.T) {
	// First Create (user turn) succeeds, second (assistant turn) fails.
	repo := &flakyChatTurnRepository{failFrom: 1}
	svc := newChatServiceWithRepo(repo)

	res, err := svc.Send(context.Background(), chatUser(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.NotEmpty(t, res.Reply)

	// Only the user turn made it to the store.
	require.Len(t, repo.turns, 1)
	assert.Equal(t, constant.ChatRoleUser, repo.turns[0].Role)
}

func TestChatServiceSendAbortsWhenUserTurnFails(t *testing.T) {
	repo := &flakyChatTurnRepository{failFrom: 0}
	svc := newChatServiceWithRepo(repo)

	res, err := svc.Send(context.Background(), chatUser(), &dto.ChatRequest{Message: "hello"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Empty(t, repo.turns)
}

func TestChatServiceSendRejectsEmptyMessage(t *testing.T) {
	repo := &flakyChatTurnRepository{failFrom: 100}
	svc := newChatServiceWithRepo(repo)

	res, err := svc.Send(context.Background(), chatUser(), &dto.ChatRequest{Message: ""})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Empty(t, repo.turns)
}
