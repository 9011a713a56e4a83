package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn rows are append-only; there is no soft delete and no update
// path, only cascade removal with the owning user.
type ChatTurn struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId         uuid.UUID `gorm:"type:uuid;index;not null"`
	User           *User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	ConversationId string    `gorm:"type:varchar(50);index;not null;default:'default'"`
	Role           string    `gorm:"type:varchar(10);not null"`
	Content        string    `gorm:"type:text;not null"`
	Context        string    `gorm:"type:varchar(20);not null;default:'general'"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}
