package services

import (
	"KidSpace/config"
	"KidSpace/models"
	"KidSpace/repositories"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

type AuthService struct {
	UserRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{UserRepo: userRepo}
}

// Register создает нового пользователя и возвращает его вместе с токеном
func (s *AuthService) Register(username, password, role string, parentID *uint, avatar string) (models.User, string, error) {
	if username == "" || password == "" {
		return models.User{}, "", errors.New("username and password are required")
	}
	if role != models.RoleParent && role != models.RoleChild && role != models.RoleCreator {
		return models.User{}, "", errors.New("invalid role")
	}
	// Детский аккаунт обязан иметь родителя-опекуна, связь фиксируется при создании
	if role == models.RoleChild && parentID == nil {
		return models.User{}, "", errors.New("child account requires parent_id")
	}

	var count int64
	if err := s.UserRepo.CountByUsername(username, &count); err != nil {
		return models.User{}, "", err
	}
	if count > 0 {
		return models.User{}, "", errors.New("username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, "", err
	}

	// Аватар по умолчанию, как на фронтенде
	if avatar == "" {
		avatar = fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", username)
	}

	user := models.User{
		Username: username,
		Password: string(hashedPassword),
		Role:     role,
		ParentID: parentID,
		Avatar:   avatar,
	}

	if err := s.UserRepo.Save(&user); err != nil {
		return models.User{}, "", err
	}

	token, err := generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Login проверяет пароль и выдает новый токен
func (s *AuthService) Login(username, password string) (models.User, string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", errors.New("invalid username or password")
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", errors.New("invalid username or password")
	}

	token, err := generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// GetUser возвращает пользователя по ID (для /api/auth/me)
func (s *AuthService) GetUser(userID uint) (models.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ListUsers возвращает всех пользователей — каталог для поиска друзей.
// Пароль и токен устройства не сериализуются
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.UserRepo.FindAll()
}

// RegisterDevice сохраняет FCM токен устройства пользователя
func (s *AuthService) RegisterDevice(userID uint, token string) error {
	if token == "" {
		return errors.New("device token is required")
	}
	return s.UserRepo.UpdateDeviceToken(userID, token)
}

func generateToken(user models.User) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTKey())
}
