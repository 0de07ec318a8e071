// file: internals/features/users/model/token_blacklist_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklistModel menyimpan token yang sudah di-logout / dicabut.
// Dicek oleh AuthMiddleware sebelum parse JWT.
type TokenBlacklistModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Token     string         `gorm:"column:token;type:text;not null;index" json:"token"`
	ExpiredAt time.Time      `gorm:"column:expired_at;not null" json:"expired_at"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
}

func (TokenBlacklistModel) TableName() string { return "token_blacklist" }
