package services

import (
	"KidSpace/models"
	"KidSpace/repositories"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ChildService struct {
	UserRepo repositories.UserRepository
}

func NewChildService(userRepo repositories.UserRepository) *ChildService {
	return &ChildService{UserRepo: userRepo}
}

// ListChildren возвращает детские аккаунты данного родителя
func (s *ChildService) ListChildren(parentID uint) ([]models.User, error) {
	return s.UserRepo.FindChildrenByParent(parentID)
}

// AddChild создает детский аккаунт, привязанный к родителю.
// Опекун фиксируется при создании и не меняется
func (s *ChildService) AddChild(parentID uint, username, password string) (models.User, error) {
	if username == "" {
		return models.User{}, errors.New("username is required")
	}
	if len(password) < 4 {
		return models.User{}, errors.New("password must be at least 4 characters")
	}

	parent, err := s.UserRepo.FindByID(parentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	if parent.Role != models.RoleParent {
		return models.User{}, errors.New("only a parent account can add children")
	}

	var count int64
	if err := s.UserRepo.CountByUsername(username, &count); err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, errors.New("username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	child := models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     models.RoleChild,
		ParentID: &parentID,
		Avatar:   fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username),
	}

	if err := s.UserRepo.Save(&child); err != nil {
		return models.User{}, err
	}

	return child, nil
}
