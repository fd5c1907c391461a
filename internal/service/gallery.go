package service

import (
	"context"
	"strings"

	"pixelwall/internal/entity"
	"pixelwall/internal/model"
)

// GalleryService 画廊查询
type GalleryService struct {
	repo model.Repository
}

func NewGalleryService(repo model.Repository) *GalleryService {
	return &GalleryService{repo: repo}
}

// Visible returns the gallery entries the viewer may see. Only moderated,
// non-archived artworks ever appear; anonymous viewers additionally never see
// artworks without an assigned location. An exact location filter is optional.
func (s *GalleryService) Visible(ctx context.Context, viewer *entity.DbUser, location string) ([]entity.GalleryItem, error) {
	query := entity.GalleryQuery{
		Authenticated: viewer != nil,
		Location:      strings.TrimSpace(location),
	}
	return s.repo.ListGallery(ctx, query)
}
