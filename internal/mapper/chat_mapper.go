package mapper

import (
	"thinkora-be/internal/entity"
	"thinkora-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ChatTurnToEntity(t *model.ChatTurn) *entity.ChatTurn {
	if t == nil {
		return nil
	}

	return &entity.ChatTurn{
		Id:             t.Id,
		UserId:         t.UserId,
		ConversationId: t.ConversationId,
		Role:           t.Role,
		Content:        t.Content,
		Context:        t.Context,
		CreatedAt:      t.CreatedAt,
	}
}

func (m *ChatMapper) ChatTurnToModel(t *entity.ChatTurn) *model.ChatTurn {
	if t == nil {
		return nil
	}

	return &model.ChatTurn{
		Id:             t.Id,
		UserId:         t.UserId,
		ConversationId: t.ConversationId,
		Role:           t.Role,
		Content:        t.Content,
		Context:        t.Context,
		CreatedAt:      t.CreatedAt,
	}
}
