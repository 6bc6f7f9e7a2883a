package repository

import (
	"time"

	"gorm.io/gorm"

	userModel "swimmingfish_backend/internals/features/users/auth/model"
)

func CreateUser(db *gorm.DB, user *userModel.UserModel) error {
	return db.Create(user).Error
}

func FindUserByUsername(db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func IsUsernameTaken(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&userModel.UserModel{}).
		Where("user_name = ?", username).
		Count(&count).Error
	return count > 0, err
}

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&userModel.TokenBlacklistModel{
		Token:     token,
		ExpiredAt: time.Now().Add(ttl),
	}).Error
}

func IsTokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var count int64
	err := db.Model(&userModel.TokenBlacklistModel{}).
		Where("token = ?", token).
		Count(&count).Error
	return count > 0, err
}

// CleanupExpiredBlacklist hard-deletes blacklist rows past their expiry.
func CleanupExpiredBlacklist(db *gorm.DB) (int64, error) {
	res := db.Unscoped().
		Where("expired_at < ?", time.Now()).
		Delete(&userModel.TokenBlacklistModel{})
	return res.RowsAffected, res.Error
}
