package usecase

import (
	"mini-social/internal/entity"
	"mini-social/internal/repo/persistent"
)

// ViewAssembler turns stored posts and comments into API-facing views. It
// resolves author names and recomputes like and comment counts at read time;
// counts are never cached between requests. A missing author never fails
// assembly, the name just comes back null. A failing count store does fail
// assembly rather than rendering a fabricated zero.
type ViewAssembler struct {
	authorName   func(userID string) (string, bool)
	likeCount    func(postID string) (int64, error)
	commentCount func(postID string) (int64, error)
}

func NewViewAssembler(
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
) *ViewAssembler {
	return &ViewAssembler{
		authorName: func(userID string) (string, bool) {
			user, err := userRepo.GetByID(userID)
			if err != nil {
				return "", false
			}
			return user.Name, true
		},
		likeCount:    postRepo.LikeCount,
		commentCount: commentRepo.CountForPost,
	}
}

func (a *ViewAssembler) PostView(post *entity.Post) (*entity.PostView, error) {
	view := &entity.PostView{
		ID:        post.ID,
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		AuthorID:  post.AuthorID,
	}

	if name, ok := a.authorName(post.AuthorID); ok {
		view.AuthorName = &name
	}

	likes, err := a.likeCount(post.ID)
	if err != nil {
		return nil, err
	}
	view.LikeCount = likes

	comments, err := a.commentCount(post.ID)
	if err != nil {
		return nil, err
	}
	view.CommentCount = comments

	return view, nil
}

func (a *ViewAssembler) PostViews(posts []*entity.Post) ([]*entity.PostView, error) {
	views := make([]*entity.PostView, len(posts))
	for i, post := range posts {
		view, err := a.PostView(post)
		if err != nil {
			return nil, err
		}
		views[i] = view
	}
	return views, nil
}

func (a *ViewAssembler) CommentView(comment *entity.Comment) *entity.CommentView {
	view := &entity.CommentView{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
		AuthorID:  comment.AuthorID,
	}

	if name, ok := a.authorName(comment.AuthorID); ok {
		view.AuthorName = &name
	}

	return view
}

func (a *ViewAssembler) CommentViews(comments []*entity.Comment) []*entity.CommentView {
	views := make([]*entity.CommentView, len(comments))
	for i, comment := range comments {
		views[i] = a.CommentView(comment)
	}
	return views
}
