package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds and validates the single-title parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

// processParseBulkReq binds and validates the bulk parse request body.
func (h *handler) processParseBulkReq(c *gin.Context) (parseBulkReq, error) {
	var req parseBulkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}
