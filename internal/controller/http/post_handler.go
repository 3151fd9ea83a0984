package http

import (
	"net/http"

	"mini-social/internal/usecase"
	"mini-social/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	assembler   *usecase.ViewAssembler
	logger      *logger.Logger
	development bool
}

func NewPostHandler(
	postUseCase usecase.PostUseCase,
	assembler *usecase.ViewAssembler,
	logger *logger.Logger,
	development bool,
) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		assembler:   assembler,
		logger:      logger,
		development: development,
	}
}

type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Absent fields stay nil so a partial update leaves the other field alone.
type UpdatePostRequest struct {
	Title *string `json:"title"`
	Body  *string `json:"body"`
}

type LikeResponse struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"likeCount"`
}

// CreatePost godoc
// @Summary      Create a new post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePostRequest true "Post content"
// @Success      201  {object}  entity.PostView
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.CreatePost(principalFrom(c), req.Title, req.Body)
	if err != nil {
		respondError(c, h.development, err)
		return
	}

	view, err := h.assembler.PostView(post)
	if err != nil {
		h.logger.Error("Failed to assemble post %s: %v", post.ID, err)
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// GetPost godoc
// @Summary      Get post by ID
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {object}  entity.PostView
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUseCase.GetPost(c.Param("id"))
	if err != nil {
		respondError(c, h.development, err)
		return
	}

	view, err := h.assembler.PostView(post)
	if err != nil {
		h.logger.Error("Failed to assemble post %s: %v", post.ID, err)
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListPosts godoc
// @Summary      List posts
// @Description  All posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {array}   entity.PostView
// @Failure      500  {object}  map[string]string
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts()
	if err != nil {
		h.logger.Error("Failed to list posts: %v", err)
		respondError(c, h.development, err)
		return
	}

	views, err := h.assembler.PostViews(posts)
	if err != nil {
		h.logger.Error("Failed to assemble post list: %v", err)
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusOK, views)
}

// UpdatePost godoc
// @Summary      Update a post
// @Description  Only the post's author may update it
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body UpdatePostRequest true "Fields to update"
// @Success      200  {object}  entity.PostView
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUseCase.UpdatePost(principalFrom(c), c.Param("id"), req.Title, req.Body)
	if err != nil {
		respondError(c, h.development, err)
		return
	}

	view, err := h.assembler.PostView(post)
	if err != nil {
		h.logger.Error("Failed to assemble post %s: %v", post.ID, err)
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Only the post's author may delete it; the post's comments and likes go with it
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  map[string]bool
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUseCase.DeletePost(principalFrom(c), c.Param("id")); err != nil {
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ToggleLike godoc
// @Summary      Toggle a like on a post
// @Description  Likes the post if the caller hasn't liked it, unlikes it otherwise
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Success      200  {object}  LikeResponse
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	liked, count, err := h.postUseCase.ToggleLike(principalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusOK, LikeResponse{
		Liked:     liked,
		LikeCount: count,
	})
}
