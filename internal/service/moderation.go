package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"pixelwall/internal/entity"
	"pixelwall/internal/model"
	"pixelwall/internal/qr"
	"pixelwall/internal/storage"
)

// ModerationService governs artwork status transitions and the one-time
// issuance of identifiers and scannable codes.
type ModerationService struct {
	repo  model.Repository
	store storage.Storage
}

// NewModerationService 创建审核服务
func NewModerationService(repo model.Repository, store storage.Storage) *ModerationService {
	return &ModerationService{repo: repo, store: store}
}

// RequestModeration moves an artwork owned by the requester into the pending
// queue.
func (s *ModerationService) RequestModeration(ctx context.Context, actor *entity.DbUser, artworkID uint) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if err := Authorize(actor, artwork.UserID, ActionRequestModeration); err != nil {
		return nil, err
	}

	status := entity.StatusPending
	if err := s.repo.UpdateArtwork(ctx, artwork.ID, entity.ArtworkUpdates{ModerationStatus: &status}); err != nil {
		return nil, err
	}
	artwork.ModerationStatus = status
	return artwork, nil
}

// Approve transitions an artwork to moderated from any status. The identifier
// is derived from the record key the first time and never changes; the
// scannable code is generated and persisted alongside it. Repeated approvals
// are idempotent.
func (s *ModerationService) Approve(ctx context.Context, actor *entity.DbUser, artworkID uint) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if err := Authorize(actor, artwork.UserID, ActionModerate); err != nil {
		return nil, err
	}

	status := entity.StatusModerated
	updates := entity.ArtworkUpdates{ModerationStatus: &status}

	identifier := artwork.Identifier
	if identifier == "" {
		identifier = fmt.Sprintf("ART-%d", artwork.ID)
		updates.Identifier = &identifier
	}

	codeRef := artwork.QRCode
	if codeRef == "" {
		code, err := qr.Encode(identifier)
		if err != nil {
			return nil, fmt.Errorf("generate code: %w", err)
		}
		codeRef, err = s.store.Save(ctx, code, storage.SaveOptions{
			Category:     "qr_codes",
			Extension:    "png",
			BaseName:     qr.FileBase(artwork.ID),
			SkipIfExists: true,
		})
		if err != nil {
			return nil, fmt.Errorf("persist code: %w", err)
		}
		updates.QRCode = &codeRef
	}

	if err := s.repo.UpdateArtwork(ctx, artwork.ID, updates); err != nil {
		return nil, err
	}
	artwork.ModerationStatus = status
	artwork.Identifier = identifier
	artwork.QRCode = codeRef

	description := fmt.Sprintf("Artwork '%s' (ID: %d) approved by user '%s'.", artwork.Name, artwork.ID, actor.Username)
	if err := s.repo.AppendTransactionLog(ctx, entity.EventArtworkApproved, description); err != nil {
		logrus.WithError(err).WithField("artwork_id", artwork.ID).Warn("failed to record approval event")
	}

	return artwork, nil
}

// Reject moves a pending artwork back to unmoderated. Any other starting
// status is an invalid transition and leaves the artwork untouched.
func (s *ModerationService) Reject(ctx context.Context, actor *entity.DbUser, artworkID uint) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if err := Authorize(actor, artwork.UserID, ActionModerate); err != nil {
		return nil, err
	}
	if artwork.ModerationStatus != entity.StatusPending {
		return nil, entity.ErrInvalidTransition
	}

	status := entity.StatusUnmoderated
	if err := s.repo.UpdateArtwork(ctx, artwork.ID, entity.ArtworkUpdates{ModerationStatus: &status}); err != nil {
		return nil, err
	}
	artwork.ModerationStatus = status
	return artwork, nil
}

// SetUnmoderated demotes an artwork to unmoderated from any status.
func (s *ModerationService) SetUnmoderated(ctx context.Context, actor *entity.DbUser, artworkID uint) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if err := Authorize(actor, artwork.UserID, ActionModerate); err != nil {
		return nil, err
	}

	status := entity.StatusUnmoderated
	if err := s.repo.UpdateArtwork(ctx, artwork.ID, entity.ArtworkUpdates{ModerationStatus: &status}); err != nil {
		return nil, err
	}
	artwork.ModerationStatus = status
	return artwork, nil
}

// AssignLocation attaches a display location. Only moderated artwork can be
// placed.
func (s *ModerationService) AssignLocation(ctx context.Context, actor *entity.DbUser, artworkID uint, location string) (*entity.DbArtwork, error) {
	artwork, err := s.repo.GetArtwork(ctx, artworkID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	if err := Authorize(actor, artwork.UserID, ActionModerate); err != nil {
		return nil, err
	}
	if artwork.ModerationStatus != entity.StatusModerated {
		return nil, entity.ErrInvalidState
	}

	location = strings.TrimSpace(location)
	if location == "" {
		return nil, entity.ErrInvalidAction
	}

	if err := s.repo.UpdateArtwork(ctx, artwork.ID, entity.ArtworkUpdates{Location: &location}); err != nil {
		return nil, err
	}
	artwork.Location = location
	return artwork, nil
}

// ListAll returns every artwork for the moderation dashboard.
func (s *ModerationService) ListAll(ctx context.Context, actor *entity.DbUser) ([]entity.DbArtwork, error) {
	if err := Authorize(actor, 0, ActionModerate); err != nil {
		return nil, err
	}
	return s.repo.ListArtworks(ctx)
}
