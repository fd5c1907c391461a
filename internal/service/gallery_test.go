package service

import (
	"context"
	"testing"

	"pixelwall/internal/entity"
)

func TestGalleryVisibility(t *testing.T) {
	repo := newMemRepo()
	gallery := NewGalleryService(repo)
	voting := NewVotingService(repo)
	owner := seedUser(t, repo, "owner", false)
	viewer := seedUser(t, repo, "viewer", false)

	located := seedArtwork(t, repo, owner.ID, entity.StatusModerated, "lobby")
	unlocated := seedArtwork(t, repo, owner.ID, entity.StatusModerated, entity.LocationNone)
	seedArtwork(t, repo, owner.ID, entity.StatusPending, "lobby")
	archived := seedArtwork(t, repo, owner.ID, entity.StatusModerated, "lobby")
	archivedFlag := true
	if err := repo.UpdateArtwork(context.Background(), archived.ID, entity.ArtworkUpdates{Archived: &archivedFlag}); err != nil {
		t.Fatalf("archive artwork: %v", err)
	}

	if err := voting.CastVote(context.Background(), viewer, located.ID, entity.VoteUp); err != nil {
		t.Fatalf("cast vote: %v", err)
	}

	anonymous, err := gallery.Visible(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("anonymous gallery: %v", err)
	}
	if len(anonymous) != 1 || anonymous[0].ID != located.ID {
		t.Fatalf("anonymous viewer should see only the located artwork, got %+v", anonymous)
	}
	if anonymous[0].VoteTotal != 1 {
		t.Fatalf("expected vote total 1, got %d", anonymous[0].VoteTotal)
	}

	authenticated, err := gallery.Visible(context.Background(), viewer, "")
	if err != nil {
		t.Fatalf("authenticated gallery: %v", err)
	}
	if len(authenticated) != 2 {
		t.Fatalf("authenticated viewer should see 2 artworks, got %d", len(authenticated))
	}
	if authenticated[0].ID != located.ID || authenticated[1].ID != unlocated.ID {
		t.Fatalf("unexpected gallery order: %+v", authenticated)
	}
}

func TestGalleryLocationFilter(t *testing.T) {
	repo := newMemRepo()
	gallery := NewGalleryService(repo)
	owner := seedUser(t, repo, "owner", false)
	viewer := seedUser(t, repo, "viewer", false)

	lobby := seedArtwork(t, repo, owner.ID, entity.StatusModerated, "lobby")
	seedArtwork(t, repo, owner.ID, entity.StatusModerated, "atrium")

	filtered, err := gallery.Visible(context.Background(), viewer, "lobby")
	if err != nil {
		t.Fatalf("filtered gallery: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != lobby.ID {
		t.Fatalf("expected only the lobby artwork, got %+v", filtered)
	}

	// filter is exact, not a prefix match
	none, err := gallery.Visible(context.Background(), viewer, "lob")
	if err != nil {
		t.Fatalf("filtered gallery: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match for partial location, got %+v", none)
	}
}
