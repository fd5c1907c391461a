package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pixelwall/internal/entity"
)

func TestRequestModerationOwnerOnly(t *testing.T) {
	repo := newMemRepo()
	svc := NewModerationService(repo, newMemStore())
	owner := seedUser(t, repo, "owner", false)
	stranger := seedUser(t, repo, "stranger", false)
	artwork := seedArtwork(t, repo, owner.ID, entity.StatusUnmoderated, entity.LocationNone)

	if _, err := svc.RequestModeration(context.Background(), stranger, artwork.ID); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-owner, got %v", err)
	}

	updated, err := svc.RequestModeration(context.Background(), owner, artwork.ID)
	if err != nil {
		t.Fatalf("request moderation: %v", err)
	}
	if updated.ModerationStatus != entity.StatusPending {
		t.Fatalf("expected pending status, got %s", updated.ModerationStatus)
	}
}

func TestApproveIssuesIdentifierAndQRCode(t *testing.T) {
	repo := newMemRepo()
	store := newMemStore()
	svc := NewModerationService(repo, store)
	owner := seedUser(t, repo, "owner", false)
	moderator := seedUser(t, repo, "mod", true)
	artwork := seedArtwork(t, repo, owner.ID, entity.StatusPending, entity.LocationNone)

	if _, err := svc.Approve(context.Background(), owner, artwork.ID); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for non-moderator, got %v", err)
	}

	approved, err := svc.Approve(context.Background(), moderator, artwork.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.ModerationStatus != entity.StatusModerated {
		t.Fatalf("expected moderated status, got %s", approved.ModerationStatus)
	}
	wantIdentifier := fmt.Sprintf("ART-%d", artwork.ID)
	if approved.Identifier != wantIdentifier {
		t.Fatalf("expected identifier %s, got %s", wantIdentifier, approved.Identifier)
	}
	if approved.QRCode == "" {
		t.Fatal("expected a QR code key to be issued")
	}
	if _, err := store.Load(context.Background(), approved.QRCode); err != nil {
		t.Fatalf("QR code object missing: %v", err)
	}
	if got := repo.eventCount(entity.EventArtworkApproved); got != 1 {
		t.Fatalf("expected 1 approval event, got %d", got)
	}
}

func TestApproveIsIdempotent(t *testing.T) {
	repo := newMemRepo()
	store := newMemStore()
	svc := NewModerationService(repo, store)
	owner := seedUser(t, repo, "owner", false)
	moderator := seedUser(t, repo, "mod", true)
	artwork := seedArtwork(t, repo, owner.ID, entity.StatusPending, entity.LocationNone)

	first, err := svc.Approve(context.Background(), moderator, artwork.ID)
	if err != nil {
		t.Fatalf("first approve: %v", err)
	}
	second, err := svc.Approve(context.Background(), moderator, artwork.ID)
	if err != nil {
		t.Fatalf("second approve: %v", err)
	}
	if first.Identifier != second.Identifier {
		t.Fatalf("identifier changed between approvals: %s vs %s", first.Identifier, second.Identifier)
	}
	if first.QRCode != second.QRCode {
		t.Fatalf("QR code changed between approvals: %s vs %s", first.QRCode, second.QRCode)
	}
	if store.saves != 1 {
		t.Fatalf("expected a single QR object write, got %d", store.saves)
	}
}

func TestRejectOnlyFromPending(t *testing.T) {
	repo := newMemRepo()
	svc := NewModerationService(repo, newMemStore())
	owner := seedUser(t, repo, "owner", false)
	moderator := seedUser(t, repo, "mod", true)

	unmoderated := seedArtwork(t, repo, owner.ID, entity.StatusUnmoderated, entity.LocationNone)
	if _, err := svc.Reject(context.Background(), moderator, unmoderated.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from unmoderated, got %v", err)
	}

	moderated := seedArtwork(t, repo, owner.ID, entity.StatusModerated, entity.LocationNone)
	if _, err := svc.Reject(context.Background(), moderator, moderated.ID); !errors.Is(err, entity.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition from moderated, got %v", err)
	}

	pending := seedArtwork(t, repo, owner.ID, entity.StatusPending, entity.LocationNone)
	rejected, err := svc.Reject(context.Background(), moderator, pending.ID)
	if err != nil {
		t.Fatalf("reject pending: %v", err)
	}
	if rejected.ModerationStatus != entity.StatusUnmoderated {
		t.Fatalf("expected unmoderated after reject, got %s", rejected.ModerationStatus)
	}
}

func TestAssignLocationRequiresModeratedStatus(t *testing.T) {
	repo := newMemRepo()
	svc := NewModerationService(repo, newMemStore())
	owner := seedUser(t, repo, "owner", false)
	moderator := seedUser(t, repo, "mod", true)

	pending := seedArtwork(t, repo, owner.ID, entity.StatusPending, entity.LocationNone)
	if _, err := svc.AssignLocation(context.Background(), moderator, pending.ID, "lobby"); !errors.Is(err, entity.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for pending artwork, got %v", err)
	}

	moderated := seedArtwork(t, repo, owner.ID, entity.StatusModerated, entity.LocationNone)
	if _, err := svc.AssignLocation(context.Background(), moderator, moderated.ID, "  "); !errors.Is(err, entity.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction for blank location, got %v", err)
	}

	updated, err := svc.AssignLocation(context.Background(), moderator, moderated.ID, "lobby")
	if err != nil {
		t.Fatalf("assign location: %v", err)
	}
	if updated.Location != "lobby" {
		t.Fatalf("expected location lobby, got %s", updated.Location)
	}
}

func TestArchiveStampsActorAndDate(t *testing.T) {
	repo := newMemRepo()
	svc := NewModerationService(repo, newMemStore())
	owner := seedUser(t, repo, "owner", false)
	stranger := seedUser(t, repo, "stranger", false)
	moderator := seedUser(t, repo, "mod", true)
	artwork := seedArtwork(t, repo, owner.ID, entity.StatusModerated, "lobby")

	if _, err := svc.Archive(context.Background(), stranger, artwork.ID); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for stranger, got %v", err)
	}

	archived, err := svc.Archive(context.Background(), owner, artwork.ID)
	if err != nil {
		t.Fatalf("archive by owner: %v", err)
	}
	if !archived.Archived {
		t.Fatal("expected archived flag set")
	}
	if archived.ArchivedBy != owner.DisplayName() {
		t.Fatalf("expected archived_by %s, got %s", owner.DisplayName(), archived.ArchivedBy)
	}
	if archived.ArchivedDate == nil {
		t.Fatal("expected archived_date set")
	}

	restored, err := svc.Unarchive(context.Background(), moderator, artwork.ID)
	if err != nil {
		t.Fatalf("unarchive by moderator: %v", err)
	}
	if restored.Archived || restored.ArchivedBy != "" || restored.ArchivedDate != nil {
		t.Fatal("expected archival metadata cleared")
	}
}

func TestListAllRequiresModerator(t *testing.T) {
	repo := newMemRepo()
	svc := NewModerationService(repo, newMemStore())
	owner := seedUser(t, repo, "owner", false)
	moderator := seedUser(t, repo, "mod", true)
	seedArtwork(t, repo, owner.ID, entity.StatusUnmoderated, entity.LocationNone)
	seedArtwork(t, repo, owner.ID, entity.StatusPending, entity.LocationNone)

	if _, err := svc.ListAll(context.Background(), owner); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for regular user, got %v", err)
	}

	all, err := svc.ListAll(context.Background(), moderator)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 artworks, got %d", len(all))
	}
}
