package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"thinkora-be/internal/constant"
	"thinkora-be/internal/dto"
	"thinkora-be/internal/entity"
	"thinkora-be/internal/pkg/logger"
	"thinkora-be/internal/repository/memory"
	"thinkora-be/internal/repository/specification"
	"thinkora-be/internal/repository/unitofwork"
	"thinkora-be/pkg/assistant"

	"github.com/google/uuid"
)

type IChatService interface {
	ResolveIdentity(ctx context.Context, rawUserID string) (*entity.User, error)
	Send(ctx context.Context, user *entity.User, req *dto.ChatRequest) (*dto.ChatResponse, error)
	History(ctx context.Context, user *entity.User, conversationID string) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	conversationRepo *memory.ConversationRepository
	router           *assistant.Router
	publisher        IPublisherService
	logger           logger.ILogger
	demoEmail        string
	historyLimit     int
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	conversationRepo *memory.ConversationRepository,
	router *assistant.Router,
	publisher IPublisherService,
	log logger.ILogger,
	demoEmail string,
	historyLimit int,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		conversationRepo: conversationRepo,
		router:           router,
		publisher:        publisher,
		logger:           log,
		demoEmail:        demoEmail,
		historyLimit:     historyLimit,
	}
}

// ResolveIdentity maps the optional JWT identity onto a user row. Anonymous
// traffic (and tokens pointing at deleted users) lands on a shared demo
// account so transcripts always have an owner.
func (s *chatService) ResolveIdentity(ctx context.Context, rawUserID string) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if rawUserID != "" {
		if id, err := uuid.Parse(rawUserID); err == nil {
			user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
			if err != nil {
				return nil, err
			}
			if user != nil {
				return user, nil
			}
		}
	}

	demo, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: s.demoEmail})
	if err != nil {
		return nil, err
	}
	if demo != nil {
		return demo, nil
	}

	demo = &entity.User{
		Id:            uuid.New(),
		Email:         s.demoEmail,
		FullName:      "Demo Student",
		Role:          entity.UserRoleDemo,
		Status:        entity.UserStatusActive,
		EmailVerified: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, demo); err != nil {
		return nil, err
	}

	s.logger.Info("CHAT", "Created shared demo user", map[string]interface{}{
		"email": s.demoEmail,
	})
	return demo, nil
}

func (s *chatService) Send(ctx context.Context, user *entity.User, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if req.Message == "" {
		return nil, errors.New("message is required")
	}

	intent, reply := s.router.Route(req.Message)

	chatContext := req.Context
	if chatContext == "" {
		chatContext = constant.DefaultChatContext
	}

	conversationID := s.conversationRepo.Touch(user.Id)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	userTurn := &entity.ChatTurn{
		Id:             uuid.New(),
		UserId:         user.Id,
		ConversationId: conversationID,
		Role:           constant.ChatRoleUser,
		Content:        req.Message,
		Context:        chatContext,
		CreatedAt:      now,
	}
	if err := uow.ChatTurnRepository().Create(ctx, userTurn); err != nil {
		return nil, err
	}

	// The ai turn sits a tick after the user turn so ordering by
	// created_at never interleaves the pair.
	aiTurn := &entity.ChatTurn{
		Id:             uuid.New(),
		UserId:         user.Id,
		ConversationId: conversationID,
		Role:           constant.ChatRoleAi,
		Content:        reply,
		Context:        chatContext,
		CreatedAt:      now.Add(time.Millisecond),
	}
	// The reply is still returned when logging the ai turn fails; the
	// user already saw their message accepted.
	if err := uow.ChatTurnRepository().Create(ctx, aiTurn); err != nil {
		s.logger.Error("CHAT", "Failed to log assistant turn", map[string]interface{}{
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
	}

	s.publishReply(ctx, user.Id, intent)

	return &dto.ChatResponse{
		Success:   true,
		Reply:     reply,
		MessageId: aiTurn.Id.String(),
		Timestamp: now.Format(time.RFC3339),
	}, nil
}

func (s *chatService) History(ctx context.Context, user *entity.User, conversationID string) (*dto.ChatHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// Fetch the newest turns, then flip so the client renders oldest first.
	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: user.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: s.historyLimit},
	}
	if conversationID != "" {
		specs = append(specs, specification.ByConversationID{ConversationID: conversationID})
	}

	turns, err := uow.ChatTurnRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatHistoryItem, len(turns))
	for i, turn := range turns {
		history[len(turns)-1-i] = dto.ChatHistoryItem{
			Id:      turn.Id.String(),
			Sender:  turn.Role,
			Text:    turn.Content,
			Time:    turn.CreatedAt.Format(time.RFC3339),
			Context: turn.Context,
		}
	}

	return &dto.ChatHistoryResponse{
		Success: true,
		History: history,
	}, nil
}

func (s *chatService) publishReply(ctx context.Context, userID uuid.UUID, intent assistant.Intent) {
	if s.publisher == nil {
		return
	}

	payload, err := json.Marshal(dto.AssistantReplyMessage{
		UserId: userID,
		Intent: string(intent),
	})
	if err != nil {
		return
	}

	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.logger.Warn("CHAT", "Failed to publish assistant reply event", map[string]interface{}{
			"user_id": userID.String(),
			"error":   err.Error(),
		})
	}
}
