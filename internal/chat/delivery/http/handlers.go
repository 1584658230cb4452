package http

import (
	"github.com/gin-gonic/gin"

	"financial-assistant/pkg/response"
)

// Ask godoc
// @Summary     Ask the financial assistant
// @Description Classifies the question, routes it to the portfolio, search, or conversational handler, and returns a single answer. Arabic questions are answered in Arabic.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body askReq true "Question and optional conversation history"
// @Success     200 {object} askResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ask(ctx, req.toScope(), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAskResp(output))
}
