package repository

import (
	"time"

	"gorm.io/gorm"

	model "bytequiz_backend/internals/features/users/auth/model"
)

func FindUserByEmail(db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uint) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func EmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&model.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func CreateUser(db *gorm.DB, user *model.UserModel) error {
	return db.Create(user).Error
}

func UpdateUserPassword(db *gorm.DB, userID uint, hashedPassword string) error {
	return db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password", hashedPassword).Error
}

// SetResetToken menyimpan pasangan reset token + expiry pada user.
func SetResetToken(db *gorm.DB, userID uint, token string, expiry time.Time) error {
	return db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":  token,
			"token_expiry": expiry,
		}).Error
}

// ClearResetToken mengosongkan kembali pasangan reset token.
func ClearResetToken(db *gorm.DB, userID uint) error {
	return db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":  nil,
			"token_expiry": nil,
		}).Error
}
