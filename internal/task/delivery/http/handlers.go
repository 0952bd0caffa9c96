package http

import (
	"github.com/gin-gonic/gin"

	"duedate-service/pkg/response"
)

// Parse godoc
// @Summary     Parse a task title for a due date
// @Description Detects a natural-language due-date expression in the title, resolves it against the reference calendar, and returns the cleaned title with the expression stripped.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Title to parse"
// @Success     200  {object} parseResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Extract(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		if mapped := mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, newParseResp(output))
}

// ParseBulk godoc
// @Summary     Parse a batch of task titles
// @Description Runs due-date extraction over up to 100 titles in one call; per-title results keep input order.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body parseBulkReq true "Titles to parse"
// @Success     200  {object} parseBulkResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/parse/bulk [POST]
func (h *handler) ParseBulk(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseBulkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExtractBulk(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExtractBulk: %v", err)
		if mapped := mapError(err); mapped != nil {
			response.Error(c, mapped, nil)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, newParseBulkResp(output))
}
