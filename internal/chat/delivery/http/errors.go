package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"financial-assistant/internal/chat"
	"financial-assistant/pkg/response"
)

// mapError translates use-case errors into HTTP responses. The use case keeps
// handler failures internal, so anything beyond validation is unexpected.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyQuestion):
		response.Error(c, err)
	default:
		response.InternalError(c)
	}
}
