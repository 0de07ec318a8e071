// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID  `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserName     string     `gorm:"column:user_name;type:varchar(100);not null" json:"user_name"`
	UserEmail    string     `gorm:"column:user_email;type:varchar(255);not null;uniqueIndex" json:"user_email"`
	UserPassword string     `gorm:"column:user_password;type:varchar(255);not null" json:"-"`
	UserRole     string     `gorm:"column:user_role;type:varchar(16);not null;default:'student'" json:"user_role"`
	UserGradeID  *uuid.UUID `gorm:"column:user_grade_id;type:uuid" json:"user_grade_id,omitempty"` // hanya student
	UserIsActive bool       `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

// SetPassword meng-hash password plaintext dengan bcrypt.
func (m *UserModel) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.UserPassword = string(hash)
	return nil
}

// CheckPassword membandingkan plaintext dengan hash tersimpan.
func (m *UserModel) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(m.UserPassword), []byte(plain)) == nil
}
