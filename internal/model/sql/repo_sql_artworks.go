package sql

import (
	"context"
	"fmt"

	"pixelwall/internal/entity"
)

// CreateArtwork persists a new artwork record.
func (r *GormRepository) CreateArtwork(ctx context.Context, artwork *entity.DbArtwork) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if artwork == nil {
		return fmt.Errorf("artwork is nil")
	}
	return r.db.WithContext(ctx).Create(artwork).Error
}

// UpdateArtwork updates an existing artwork entry.
func (r *GormRepository) UpdateArtwork(ctx context.Context, id uint, updates entity.ArtworkUpdates) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return fmt.Errorf("invalid artwork id")
	}
	values := updates.ToMap()
	if len(values) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Model(&entity.DbArtwork{}).Where("id = ?", id).Updates(values).Error
}

// GetArtwork loads an artwork by ID, including the binary payload.
func (r *GormRepository) GetArtwork(ctx context.Context, id uint) (*entity.DbArtwork, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	if id == 0 {
		return nil, fmt.Errorf("invalid artwork id")
	}
	var artwork entity.DbArtwork
	if err := r.db.WithContext(ctx).First(&artwork, id).Error; err != nil {
		return nil, err
	}
	return &artwork, nil
}

// ListArtworksByOwner returns every artwork owned by the given user.
func (r *GormRepository) ListArtworksByOwner(ctx context.Context, userID uint) ([]entity.DbArtwork, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var artworks []entity.DbArtwork
	err := r.db.WithContext(ctx).
		Omit("pixel_data").
		Where("user_id = ?", userID).
		Order("id").
		Find(&artworks).Error
	if err != nil {
		return nil, err
	}
	return artworks, nil
}

// ListArtworks returns every artwork for the moderation dashboard.
func (r *GormRepository) ListArtworks(ctx context.Context) ([]entity.DbArtwork, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	var artworks []entity.DbArtwork
	if err := r.db.WithContext(ctx).Omit("pixel_data").Order("id").Find(&artworks).Error; err != nil {
		return nil, err
	}
	return artworks, nil
}

// ListGallery returns the visibility-scoped gallery rows with vote totals.
func (r *GormRepository) ListGallery(ctx context.Context, query entity.GalleryQuery) ([]entity.GalleryItem, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}

	q := r.db.WithContext(ctx).Model(&entity.DbArtwork{}).
		Select("artworks.id, artworks.name, artworks.image_file, artworks.location, artworks.user_id, artworks.identifier, artworks.qr_code, COALESCE(SUM(votes.value), 0) AS vote_total").
		Joins("LEFT JOIN votes ON votes.artwork_id = artworks.id").
		Where("artworks.moderation_status = ?", entity.StatusModerated).
		Where("artworks.archived = ?", false)

	if !query.Authenticated {
		q = q.Where("artworks.location <> ?", entity.LocationNone)
	}
	if query.Location != "" {
		q = q.Where("artworks.location = ?", query.Location)
	}

	var items []entity.GalleryItem
	if err := q.Group("artworks.id, artworks.name, artworks.image_file, artworks.location, artworks.user_id, artworks.identifier, artworks.qr_code").
		Order("artworks.id").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
