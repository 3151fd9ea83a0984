package usecase

import (
	"errors"
	"strings"

	"mini-social/internal/entity"
	"mini-social/internal/repo/persistent"
	"mini-social/pkg/logger"

	"gorm.io/gorm"
)

type PostUseCase interface {
	CreatePost(principal entity.Principal, title, body string) (*entity.Post, error)
	GetPost(postID string) (*entity.Post, error)
	ListPosts() ([]*entity.Post, error)
	UpdatePost(principal entity.Principal, postID string, title, body *string) (*entity.Post, error)
	DeletePost(principal entity.Principal, postID string) error
	ToggleLike(principal entity.Principal, postID string) (bool, int64, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *postUseCase) CreatePost(principal entity.Principal, title, body string) (*entity.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(body) == "" {
		return nil, entity.ErrTitleBodyRequired
	}

	post := &entity.Post{
		AuthorID: principal.ID,
		Title:    title,
		Body:     body,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, err
	}

	return post, nil
}

func (uc *postUseCase) GetPost(postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (uc *postUseCase) ListPosts() ([]*entity.Post, error) {
	return uc.postRepo.List()
}

// UpdatePost checks existence before ownership, so a missing post reads as
// not found rather than forbidden, and ownership before validation, so a
// non-owner never learns whether their payload was valid.
func (uc *postUseCase) UpdatePost(principal entity.Principal, postID string, title, body *string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}

	if !post.OwnedBy(principal) {
		return nil, entity.ErrNotPostOwner
	}

	if title != nil {
		post.Title = *title
	}
	if body != nil {
		post.Body = *body
	}
	if strings.TrimSpace(post.Title) == "" || strings.TrimSpace(post.Body) == "" {
		return nil, entity.ErrTitleBodyRequired
	}

	if err := uc.postRepo.Update(post); err != nil {
		uc.logger.Error("Failed to update post %s: %v", postID, err)
		return nil, err
	}

	return post, nil
}

// DeletePost removes the post's comments first and the post itself second.
// Both steps tolerate already-deleted rows, so a retry after a partial
// failure converges on the fully deleted state.
func (uc *postUseCase) DeletePost(principal entity.Principal, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.ErrPostNotFound
		}
		return err
	}

	if !post.OwnedBy(principal) {
		return entity.ErrNotPostOwner
	}

	if err := uc.commentRepo.DeleteAllForPost(postID); err != nil {
		uc.logger.Error("Failed to delete comments for post %s: %v", postID, err)
		return err
	}

	if err := uc.postRepo.Delete(postID); err != nil {
		uc.logger.Error("Failed to delete post %s: %v", postID, err)
		return err
	}

	return nil
}

func (uc *postUseCase) ToggleLike(principal entity.Principal, postID string) (bool, int64, error) {
	liked, count, err := uc.postRepo.ToggleLike(principal.ID, postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, entity.ErrPostNotFound
		}
		uc.logger.Error("Failed to toggle like on post %s: %v", postID, err)
		return false, 0, err
	}
	return liked, count, nil
}
