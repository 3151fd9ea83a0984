package persistent

import (
	"mini-social/internal/entity"
	"mini-social/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	ListForPost(postID string) ([]*entity.Comment, error)
	CountForPost(postID string) (int64, error)
	DeleteAllForPost(postID string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if commentModel.ID == "" {
		commentModel.ID = uuid.New().String()
	}
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) ListForPost(postID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.Where("post_id = ?", postID).
		Order("created_at DESC, seq DESC").
		Find(&commentModels).Error; err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *commentRepository) CountForPost(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.CommentModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// DeleteAllForPost is idempotent: deleting when no comments exist is a
// no-op, which lets the post delete cascade be retried safely.
func (r *commentRepository) DeleteAllForPost(postID string) error {
	return r.db.Where("post_id = ?", postID).Delete(&model.CommentModel{}).Error
}
