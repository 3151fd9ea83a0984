package persistent

import (
	"errors"

	"mini-social/internal/entity"
	"mini-social/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List() ([]*entity.Post, error)
	Update(post *entity.Post) error
	Delete(id string) error
	Exists(id string) (bool, error)
	ToggleLike(userID, postID string) (liked bool, count int64, err error)
	LikeCount(postID string) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if postModel.ID == "" {
		postModel.ID = uuid.New().String()
	}
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// List returns a point-in-time snapshot, newest first. Seq breaks
// created_at ties so the ordering is total.
func (r *postRepository) List() ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Order("created_at DESC, seq DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) Update(post *entity.Post) error {
	return r.db.Model(&model.PostModel{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"title": post.Title,
			"body":  post.Body,
		}).Error
}

// Delete removes the post and its like rows. A post that is already gone is
// not an error so the cascade stays retryable. Comments are removed by the
// caller before this runs.
func (r *postRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.LikeModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PostModel{}).Error
	})
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// ToggleLike flips the caller's membership in the post's like set. The whole
// read-modify-write runs in one transaction holding a row lock on the post,
// so concurrent toggles on the same post serialize and neither update is
// lost. Returns the membership after the flip and the resulting set size.
func (r *postRepository) ToggleLike(userID, postID string) (bool, int64, error) {
	var liked bool
	var count int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var postModel model.PostModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", postID).First(&postModel).Error; err != nil {
			return err
		}

		var existing model.LikeModel
		err := tx.Where("user_id = ? AND post_id = ?", userID, postID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := &model.LikeModel{UserID: userID, PostID: postID}
			if err := tx.Create(like).Error; err != nil {
				return err
			}
			liked = true
		default:
			return err
		}

		return tx.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if err != nil {
		return false, 0, err
	}

	return liked, count, nil
}

func (r *postRepository) LikeCount(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.LikeModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
