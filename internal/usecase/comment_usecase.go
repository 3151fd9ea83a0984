package usecase

import (
	"strings"

	"mini-social/internal/entity"
	"mini-social/internal/repo/persistent"
	"mini-social/pkg/logger"
)

type CommentUseCase interface {
	CreateComment(principal entity.Principal, postID, body string) (*entity.Comment, error)
	ListForPost(postID string) ([]*entity.Comment, error)
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) CreateComment(principal entity.Principal, postID, body string) (*entity.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, entity.ErrCommentBodyRequired
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, entity.ErrPostNotFound
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: principal.ID,
		Body:     body,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		uc.logger.Error("Failed to create comment on post %s: %v", postID, err)
		return nil, err
	}

	return comment, nil
}

// ListForPost returns the post's comments without checking the post still
// exists: a deleted post simply has none left, so the result is an empty
// list rather than an error.
func (uc *commentUseCase) ListForPost(postID string) ([]*entity.Comment, error) {
	return uc.commentRepo.ListForPost(postID)
}
