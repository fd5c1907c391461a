package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"pixelwall/internal/entity"
	"pixelwall/internal/imaging"
	"pixelwall/internal/model"
)

// ArtworkService 作品上传与查询
type ArtworkService struct {
	repo model.Repository
}

func NewArtworkService(repo model.Repository) *ArtworkService {
	return &ArtworkService{repo: repo}
}

// Upload normalizes the image to canonical PNG pixel data and creates the
// artwork in the unmoderated state.
func (s *ArtworkService) Upload(ctx context.Context, actor *entity.DbUser, name, filename string, r io.Reader) (*entity.DbArtwork, error) {
	if actor == nil {
		return nil, entity.ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, entity.ErrInvalidAction
	}

	normalized, err := imaging.Normalize(filename, r)
	if err != nil {
		return nil, err
	}

	artwork := &entity.DbArtwork{
		Name:             name,
		ImageFile:        normalized.Filename,
		PixelData:        normalized.Data,
		ModerationStatus: entity.StatusUnmoderated,
		Location:         entity.LocationNone,
		UserID:           actor.ID,
	}
	if err := s.repo.CreateArtwork(ctx, artwork); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Artwork '%s' (ID: %d) uploaded by user '%s'.", artwork.Name, artwork.ID, actor.Username)
	if err := s.repo.AppendTransactionLog(ctx, entity.EventArtworkUploaded, description); err != nil {
		logrus.WithError(err).WithField("event", entity.EventArtworkUploaded).Warn("append transaction log failed")
	}
	return artwork, nil
}

// Get loads an artwork without its pixel data.
func (s *ArtworkService) Get(ctx context.Context, artworkID uint) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return artwork, nil
}

// Mine lists the actor's own artworks, archived ones included.
func (s *ArtworkService) Mine(ctx context.Context, actor *entity.DbUser) ([]entity.DbArtwork, error) {
	if actor == nil {
		return nil, entity.ErrUnauthorized
	}
	return s.repo.ListArtworksByOwner(ctx, actor.ID)
}

// Image returns the canonical PNG bytes for an artwork.
func (s *ArtworkService) Image(ctx context.Context, artworkID uint) ([]byte, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if len(artwork.PixelData) == 0 {
		return nil, entity.ErrNotFound
	}
	return artwork.PixelData, nil
}
