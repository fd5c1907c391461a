package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pixelwall/internal/entity"
)

// Gallery 画廊列表, 匿名可访问; 可选 location 查询参数做精确过滤
func (h *HTTPHandler) Gallery(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := h.gallery.Visible(ctx, CurrentUser(c), c.Query("location"))
	if err != nil {
		DomainError(c, err)
		return
	}
	if items == nil {
		items = []entity.GalleryItem{}
	}
	c.JSON(http.StatusOK, items)
}
