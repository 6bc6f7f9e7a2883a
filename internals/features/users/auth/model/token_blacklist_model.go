package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklistModel holds revoked access tokens until their natural expiry.
type TokenBlacklistModel struct {
	ID        uint           `gorm:"column:id;primaryKey;autoIncrement"`
	Token     string         `gorm:"column:token;type:text;not null;index"`
	ExpiredAt time.Time      `gorm:"column:expired_at;not null;index"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklists" }
