package services

import (
	"KidSpace/models"
	"KidSpace/repositories/mocks"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterParent(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(mockUserRepo)

	mockUserRepo.On("CountByUsername", "alice", mock.AnythingOfType("*int64")).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*int64) = 0
		}).Return(nil)
	mockUserRepo.On("Save", mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*models.User).ID = 1
		}).Return(nil)

	user, token, err := authService.Register("alice", "secret123", models.RoleParent, nil, "")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleParent, user.Role)
	// Пароль хранится только в виде bcrypt-хеша
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	// Аватар по умолчанию генерируется из имени пользователя
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=alice", user.Avatar)
}

func TestRegisterChildRequiresParent(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(mockUserRepo)

	_, _, err := authService.Register("kiddo", "secret123", models.RoleChild, nil, "")

	assert.Error(t, err)
	mockUserRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(mockUserRepo)

	mockUserRepo.On("CountByUsername", "alice", mock.AnythingOfType("*int64")).
		Run(func(args mock.Arguments) {
			*args.Get(1).(*int64) = 1
		}).Return(nil)

	_, _, err := authService.Register("alice", "secret123", models.RoleParent, nil, "")

	assert.Error(t, err)
	mockUserRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRegisterInvalidRole(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(mockUserRepo)

	_, _, err := authService.Register("bob", "secret123", "admin", nil, "")

	assert.Error(t, err)
}

// Ключ подписи должен читаться в момент выдачи токена: секрет появляется
// в окружении уже после инициализации пакета
func TestGenerateTokenUsesSecretLoadedAfterStart(t *testing.T) {
	t.Setenv("JWT_SECRET", "late-loaded-secret")

	token, err := generateToken(models.User{ID: 1, Username: "alice", Role: models.RoleParent})
	assert.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("late-loaded-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, uint(1), parsed.Claims.(*Claims).UserID)
}

func TestLogin(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := models.User{ID: 1, Username: "alice", Password: string(hashed), Role: models.RoleParent}

	mockUserRepo.On("FindByUsername", "alice").Return(stored, nil)

	user, token, err := authService.Login("alice", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(1), user.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := NewAuthService(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	stored := models.User{ID: 1, Username: "alice", Password: string(hashed)}

	mockUserRepo.On("FindByUsername", "alice").Return(stored, nil)

	_, _, err := authService.Login("alice", "wrong")

	assert.Error(t, err)
}
