package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adamsai/video-summarizer/apperr"
)

// respondError maps error kinds to HTTP statuses and emits the uniform
// {"error": ...} body. Internal details stay in the logs.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.JSON(status, gin.H{"error": msg, "kind": apperr.KindOf(err).String()})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid %s: %s", name, c.Param(name)))
		return 0, false
	}
	return uint(id), true
}

// parsePagination reads limit/offset query params. Non-numeric values are
// rejected, range checks happen in the services.
func parsePagination(c *gin.Context) (int, int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid limit: %s", c.Query("limit")))
		return 0, 0, false
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid offset: %s", c.Query("offset")))
		return 0, 0, false
	}
	return limit, offset, true
}

func parseOptionalID(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondError(c, apperr.New(apperr.KindInvalidInput, "invalid %s: %s", name, raw))
		return 0, false
	}
	return uint(id), true
}
