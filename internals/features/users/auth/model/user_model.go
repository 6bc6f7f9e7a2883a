package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel represents the users table. The password column always holds a
// bcrypt hash, never plaintext.
type UserModel struct {
	UserID        uint   `gorm:"column:user_id;primaryKey;autoIncrement"`
	UserName      string `gorm:"column:user_name;size:50;uniqueIndex;not null"`
	UserPassword  string `gorm:"column:user_password;size:255;not null"`
	UserEmail     string `gorm:"column:user_email;size:255"`
	UserFirstName string `gorm:"column:user_first_name;size:50"`
	UserLastName  string `gorm:"column:user_last_name;size:50"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }
