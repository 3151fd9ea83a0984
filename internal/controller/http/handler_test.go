package http

import (
	"errors"

	"mini-social/internal/entity"
	"mini-social/internal/repo/persistent"
	"mini-social/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Stub repositories back the view assembler in handler tests with fixed data.
type stubUserRepo struct {
	names map[string]string
}

func (s *stubUserRepo) Create(user *entity.User) error { return nil }

func (s *stubUserRepo) GetByEmail(email string) (*entity.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubUserRepo) GetByID(id string) (*entity.User, error) {
	name, ok := s.names[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &entity.User{ID: id, Name: name}, nil
}

type stubPostRepo struct {
	likes map[string]int64
}

func (s *stubPostRepo) Create(post *entity.Post) error { return nil }

func (s *stubPostRepo) GetByID(id string) (*entity.Post, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubPostRepo) List() ([]*entity.Post, error) { return nil, nil }

func (s *stubPostRepo) Update(post *entity.Post) error { return nil }

func (s *stubPostRepo) Delete(id string) error { return nil }

func (s *stubPostRepo) Exists(id string) (bool, error) { return false, nil }

func (s *stubPostRepo) ToggleLike(userID, postID string) (bool, int64, error) {
	return false, 0, errors.New("not implemented")
}

func (s *stubPostRepo) LikeCount(postID string) (int64, error) {
	return s.likes[postID], nil
}

type stubCommentRepo struct {
	counts map[string]int64
}

func (s *stubCommentRepo) Create(comment *entity.Comment) error { return nil }

func (s *stubCommentRepo) ListForPost(postID string) ([]*entity.Comment, error) {
	return nil, nil
}

func (s *stubCommentRepo) CountForPost(postID string) (int64, error) {
	return s.counts[postID], nil
}

func (s *stubCommentRepo) DeleteAllForPost(postID string) error { return nil }

var (
	_ persistent.UserRepository    = (*stubUserRepo)(nil)
	_ persistent.PostRepository    = (*stubPostRepo)(nil)
	_ persistent.CommentRepository = (*stubCommentRepo)(nil)
)

func testAssembler(names map[string]string, likes, comments map[string]int64) *usecase.ViewAssembler {
	return usecase.NewViewAssembler(
		&stubUserRepo{names: names},
		&stubPostRepo{likes: likes},
		&stubCommentRepo{counts: comments},
	)
}

// MockPostUseCase is a mock implementation of usecase.PostUseCase
type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(principal entity.Principal, title, body string) (*entity.Post, error) {
	args := m.Called(principal, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(postID string) (*entity.Post, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) ListPosts() ([]*entity.Post, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(principal entity.Principal, postID string, title, body *string) (*entity.Post, error) {
	args := m.Called(principal, postID, title, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(principal entity.Principal, postID string) error {
	args := m.Called(principal, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) ToggleLike(principal entity.Principal, postID string) (bool, int64, error) {
	args := m.Called(principal, postID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

var _ usecase.PostUseCase = (*MockPostUseCase)(nil)

// MockCommentUseCase is a mock implementation of usecase.CommentUseCase
type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) CreateComment(principal entity.Principal, postID, body string) (*entity.Comment, error) {
	args := m.Called(principal, postID, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListForPost(postID string) ([]*entity.Comment, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

var _ usecase.CommentUseCase = (*MockCommentUseCase)(nil)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(name, email, password string) (*entity.User, string, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) Login(email, password string) (*entity.User, string, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*entity.User), args.String(1), args.Error(2)
}

func (m *MockAuthUseCase) GetUser(userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

var _ usecase.AuthUseCase = (*MockAuthUseCase)(nil)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asPrincipal(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
	}
}
