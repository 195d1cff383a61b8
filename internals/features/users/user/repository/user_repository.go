package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* ====================== USER (identity store) ====================== */

func CreateUser(ctx context.Context, db *gorm.DB, user *userModel.UserModel) error {
	return db.WithContext(ctx).Create(user).Error
}

func FindUserByUsername(ctx context.Context, db *gorm.DB, username string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("user_name = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByCode(ctx context.Context, db *gorm.DB, code string) (*userModel.UserModel, error) {
	var user userModel.UserModel
	if err := db.WithContext(ctx).Where("user_code = ?", code).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func ExistsByUsername(ctx context.Context, db *gorm.DB, username string) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&userModel.UserModel{}).
		Where("user_name = ?", username).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func DeleteUser(ctx context.Context, db *gorm.DB, userID int64) error {
	return db.WithContext(ctx).Delete(&userModel.UserModel{}, "user_id = ?", userID).Error
}

// IsNotFound reports whether err is the store's missing-row error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
