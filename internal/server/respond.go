package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stroytechnika/pumpdesk/internal/resource"
	"go.uber.org/zap"
)

// Every response carries the success discriminant: data plus optional stats
// on the happy path, a message with the machine-readable code otherwise.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, data any, stats any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "stats": stats})
}

func respondDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) respondError(c *gin.Context, err error) {
	status := statusFor(resource.KindOf(err))
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
		"code":    resource.CodeOf(err),
		"status":  status,
	})
}

func respondInvalidRequest(c *gin.Context, reason string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   reason,
		"code":    "",
		"status":  http.StatusBadRequest,
	})
}

// statusFor maps the error taxonomy onto the three statuses the API emits:
// validation, conflict, and path failures are caller mistakes (400), unknown
// ids are 404, everything else is 500.
func statusFor(kind resource.Kind) int {
	switch kind {
	case resource.KindValidation, resource.KindConflict, resource.KindPathNotFound:
		return http.StatusBadRequest
	case resource.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
