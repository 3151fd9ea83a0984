package usecase

import (
	"errors"
	"testing"

	"mini-social/internal/entity"
	"mini-social/pkg/jwt"
	"mini-social/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthUseCase(userRepo *MockUserRepository) AuthUseCase {
	return NewAuthUseCase(userRepo, jwt.NewService("test-secret"), logger.New())
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByEmail", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	userRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		// the stored password must be a hash, never the plaintext
		return u.Email == "alice@example.com" && u.Password != "password123"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*entity.User).ID = "user-1"
	}).Return(nil)

	user, token, err := uc.Register("Alice", "alice@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
	userRepo.AssertExpectations(t)
}

func TestRegister_MissingFields(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	_, _, err := uc.Register("Alice", "", "password123")
	assert.ErrorIs(t, err, entity.ErrEmailPasswordRequired)

	_, _, err = uc.Register("Alice", "alice@example.com", "")
	assert.ErrorIs(t, err, entity.ErrEmailPasswordRequired)

	userRepo.AssertNotCalled(t, "Create")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	existing := &entity.User{ID: "user-1", Email: "alice@example.com"}
	userRepo.On("GetByEmail", "alice@example.com").Return(existing, nil)

	_, _, err := uc.Register("Alice", "alice@example.com", "password123")

	assert.Error(t, err)
	userRepo.AssertNotCalled(t, "Create")
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", "alice@example.com").Return(&entity.User{
		ID:       "user-1",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: string(hashed),
	}, nil)

	user, token, err := uc.Login("alice@example.com", "password123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)

	claims, err := jwt.NewService("test-secret").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	userRepo.On("GetByEmail", "alice@example.com").Return(&entity.User{
		ID:       "user-1",
		Email:    "alice@example.com",
		Password: string(hashed),
	}, nil)

	_, _, err := uc.Login("alice@example.com", "wrong")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByEmail", "ghost@example.com").Return(nil, errors.New("record not found"))

	_, _, err := uc.Login("ghost@example.com", "password123")

	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestGetUser_NotFound(t *testing.T) {
	userRepo := new(MockUserRepository)
	uc := newAuthUseCase(userRepo)

	userRepo.On("GetByID", "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := uc.GetUser("missing")

	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}
