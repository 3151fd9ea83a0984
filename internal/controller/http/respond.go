package http

import (
	"errors"
	"net/http"

	"mini-social/internal/entity"

	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP statuses in one place so every
// handler reports the same error the same way.
func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrTitleBodyRequired),
		errors.Is(err, entity.ErrCommentBodyRequired),
		errors.Is(err, entity.ErrEmailPasswordRequired),
		errors.Is(err, entity.ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNotPostOwner):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrPostNotFound),
		errors.Is(err, entity.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the mapped status. Unexpected errors leak no detail
// to clients outside development mode.
func respondError(c *gin.Context, development bool, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError && !development {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// principalFrom reads the identity the auth middleware stored on the
// request context.
func principalFrom(c *gin.Context) entity.Principal {
	return entity.Principal{
		ID:    c.GetString("user_id"),
		Name:  c.GetString("user_name"),
		Email: c.GetString("user_email"),
	}
}
