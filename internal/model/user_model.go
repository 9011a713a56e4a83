package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Id                           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email                        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash                 *string   `gorm:"type:varchar(255)"`
	FullName                     string    `gorm:"type:varchar(255);not null"`
	Role                         string    `gorm:"type:varchar(50);not null;default:'user'"`
	Status                       string    `gorm:"type:varchar(50);not null;default:'pending'"`
	EmailVerified                bool      `gorm:"default:false"`
	EmailVerifiedAt              *time.Time
	AssistantDailyUsage          int `gorm:"default:0"`
	AssistantDailyUsageLastReset time.Time
	CreatedAt                    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt                    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt                    gorm.DeletedAt `gorm:"index"`
}

type EmailVerificationToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index;not null"`
	Token     string    `gorm:"type:varchar(10);not null"`
	ExpiresAt time.Time
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type UserRefreshToken struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index;not null"`
	TokenHash string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time
	Revoked   bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	IpAddress string    `gorm:"type:varchar(45)"`
	UserAgent string    `gorm:"type:text"`
}
