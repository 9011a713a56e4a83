package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Course struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserId       uuid.UUID       `gorm:"type:uuid;index;not null"`
	User         *User           `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	CourseName   string          `gorm:"type:varchar(100);not null"`
	Credits      decimal.Decimal `gorm:"type:numeric(3,1);not null"`
	LetterGrade  string          `gorm:"type:varchar(2);not null"`
	SemesterYear *string         `gorm:"type:varchar(50)"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
}
