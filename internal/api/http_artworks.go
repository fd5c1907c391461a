package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pixelwall/internal/entity"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// UploadArtwork 上传作品, multipart 表单: name + image
func (h *HTTPHandler) UploadArtwork(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		MissingField(c, "name")
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		MissingField(c, "image")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		InvalidPayload(c)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	artwork, err := h.artworks.Upload(ctx, CurrentUser(c), name, fileHeader.Filename, file)
	if err != nil {
		DomainError(c, err)
		return
	}

	// 可选: 上传后立即提交审核
	if c.PostForm("request_moderation") == "true" {
		artwork, err = h.moderation.RequestModeration(ctx, CurrentUser(c), artwork.ID)
		if err != nil {
			DomainError(c, err)
			return
		}
	}
	c.JSON(http.StatusCreated, entity.MakeArtworkSummary(artwork))
}

// MyArtworks 列出当前用户的作品, 含已归档
func (h *HTTPHandler) MyArtworks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artworks, err := h.artworks.Mine(ctx, CurrentUser(c))
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

func (h *HTTPHandler) GetArtwork(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artwork, err := h.artworks.Get(ctx, id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}

// ArtworkImage 输出作品的规范化 PNG 图像
func (h *HTTPHandler) ArtworkImage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	data, err := h.artworks.Image(ctx, id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

// ArtworkQRCode 输出作品的二维码图像
func (h *HTTPHandler) ArtworkQRCode(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	artwork, err := h.artworks.Get(ctx, id)
	if err != nil {
		DomainError(c, err)
		return
	}
	if artwork.QRCode == "" {
		NotFound(c, "no QR code issued for this artwork")
		return
	}
	data, err := h.storage.Load(ctx, artwork.QRCode)
	if err != nil {
		InternalError(c, "failed to load QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}

func (h *HTTPHandler) RequestModeration(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artwork, err := h.moderation.RequestModeration(ctx, CurrentUser(c), id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}

func (h *HTTPHandler) ArchiveArtwork(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artwork, err := h.moderation.Archive(ctx, CurrentUser(c), id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}

func (h *HTTPHandler) UnarchiveArtwork(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	artwork, err := h.moderation.Unarchive(ctx, CurrentUser(c), id)
	if err != nil {
		DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeArtworkSummary(artwork))
}
