package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

func (s *AuthService) GetAdminByEmail(email string) (*AdminUser, error) {
	var admin AdminUser
	result := s.DB.Where("email = ?", email).First(&admin)
	if result.Error != nil {
		return nil, result.Error
	}
	return &admin, nil
}

func (s *AuthService) CreateAdmin(email, passwordHash string) (*AdminUser, error) {
	admin := AdminUser{
		Email:        strings.TrimSpace(strings.ToLower(email)),
		PasswordHash: passwordHash,
	}

	if err := s.DB.Create(&admin).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "unique constraint") {
			return nil, errors.New("an admin with this email already exists")
		}
		return nil, err
	}

	return &admin, nil
}

func (s *AuthService) UpdateAdminPassword(email, passwordHash string) (*AdminUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var admin AdminUser
	if err := s.DB.Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&admin).Update("password_hash", passwordHash).Error; err != nil {
		return nil, err
	}

	admin.PasswordHash = passwordHash
	return &admin, nil
}
