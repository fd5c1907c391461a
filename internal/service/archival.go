package service

import (
	"context"
	"time"

	"pixelwall/internal/entity"
)

// Archive soft-hides an artwork and stamps who archived it and when. Allowed
// for the owner or a moderator; archival is orthogonal to moderation status.
func (s *ModerationService) Archive(ctx context.Context, actor *entity.DbUser, artworkID uint) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if err := Authorize(actor, artwork.UserID, ActionArchive); err != nil {
		return nil, err
	}

	archived := true
	archivedBy := actor.DisplayName()
	archivedDate := time.Now().UTC()
	err = s.repo.UpdateArtwork(ctx, artwork.ID, entity.ArtworkUpdates{
		Archived:     &archived,
		ArchivedBy:   &archivedBy,
		ArchivedDate: &archivedDate,
	})
	if err != nil {
		return nil, err
	}
	artwork.Archived = archived
	artwork.ArchivedBy = archivedBy
	artwork.ArchivedDate = &archivedDate
	return artwork, nil
}

// Unarchive clears the archived flag and its metadata.
func (s *ModerationService) Unarchive(ctx context.Context, actor *entity.DbUser, artworkID uint) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if err := Authorize(actor, artwork.UserID, ActionArchive); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateArtwork(ctx, artwork.ID, entity.ArtworkUpdates{ClearArchival: true}); err != nil {
		return nil, err
	}
	artwork.Archived = false
	artwork.ArchivedBy = ""
	artwork.ArchivedDate = nil
	return artwork, nil
}
