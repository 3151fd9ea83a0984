package http

import (
	"net/http"

	"mini-social/internal/usecase"
	"mini-social/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	assembler      *usecase.ViewAssembler
	logger         *logger.Logger
	development    bool
}

func NewCommentHandler(
	commentUseCase usecase.CommentUseCase,
	assembler *usecase.ViewAssembler,
	logger *logger.Logger,
	development bool,
) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		assembler:      assembler,
		logger:         logger,
		development:    development,
	}
}

type CreateCommentRequest struct {
	Body string `json:"body"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Post ID"
// @Param        request body CreateCommentRequest true "Comment content"
// @Success      201  {object}  entity.CommentView
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.commentUseCase.CreateComment(principalFrom(c), c.Param("id"), req.Body)
	if err != nil {
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusCreated, h.assembler.CommentView(comment))
}

// ListComments godoc
// @Summary      List a post's comments
// @Description  All comments on the post, newest first; empty for unknown or deleted posts
// @Tags         comments
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200  {array}   entity.CommentView
// @Failure      500  {object}  map[string]string
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUseCase.ListForPost(c.Param("id"))
	if err != nil {
		respondError(c, h.development, err)
		return
	}

	c.JSON(http.StatusOK, h.assembler.CommentViews(comments))
}
