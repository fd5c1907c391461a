package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// TransactionLogs 审计日志, 仅版主可见
func (h *HTTPHandler) TransactionLogs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	events, err := h.audit.Events(ctx, CurrentUser(c))
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
