package services

import (
	"errors"
	"strings"

	"factshub/internal/apperror"
	"factshub/internal/db"
	"factshub/internal/models"
	"factshub/internal/utils"

	"gorm.io/gorm"
)

// Register creates a new account with the default user role.
func Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, apperror.New(apperror.ErrValidation, "username, email and password are required")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, apperror.Store(err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
	}

	txErr := db.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).
			Where("username = ? OR email = ?", username, email).
			Count(&count).Error; err != nil {
			return apperror.Store(err)
		}
		if count > 0 {
			return apperror.New(apperror.ErrConflict, "username or email already taken")
		}
		if err := tx.Create(&user).Error; err != nil {
			// The unique indexes catch the race the pre-check misses.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.New(apperror.ErrConflict, "username or email already taken")
			}
			return apperror.Store(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &user, nil
}

// Authenticate verifies credentials and returns the user. The same neutral
// error covers an unknown email and a wrong password.
func Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrAuthentication, "invalid email or password")
		}
		return nil, apperror.Store(err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperror.New(apperror.ErrAuthentication, "invalid email or password")
	}
	return &user, nil
}

// GetUser loads a user by id (profile page).
func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.ErrNotFound, "user not found")
		}
		return nil, apperror.Store(err)
	}
	return &user, nil
}
