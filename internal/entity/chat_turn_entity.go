// FILE: internal/entity/chat_turn_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one logged message in a conversation. Turns are append-only:
// they are never mutated after creation and only disappear when the owning
// user is deleted (cascade).
type ChatTurn struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	ConversationId string
	Role           string // constant.ChatRoleUser | constant.ChatRoleAi
	Content        string
	Context        string
	CreatedAt      time.Time
}
