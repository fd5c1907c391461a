package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pixelwall/internal/entity"
)

// ModerationQueue 版主面板: 列出全部作品及其状态
func (h *HTTPHandler) ModerationQueue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artworks, err := h.moderation.ListAll(ctx, CurrentUser(c))
	if err != nil {
		DomainError(c, err)
		return
	}

	summaries := make([]entity.ArtworkSummary, 0, len(artworks))
	for i := range artworks {
		summaries = append(summaries, entity.MakeArtworkSummary(&artworks[i]))
	}
	c.JSON(http.StatusOK, summaries)
}

func (h *HTTPHandler) ApproveArtwork(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	artwork, err := h.moderation.Approve(ctx, CurrentUser(c), id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}

func (h *HTTPHandler) RejectArtwork(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artwork, err := h.moderation.Reject(ctx, CurrentUser(c), id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}

func (h *HTTPHandler) UnmoderateArtwork(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artwork, err := h.moderation.SetUnmoderated(ctx, CurrentUser(c), id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}

func (h *HTTPHandler) AssignLocation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req struct {
		Location string `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Location) == "" {
		MissingField(c, "location")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artwork, err := h.moderation.AssignLocation(ctx, CurrentUser(c), id, req.Location)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}
