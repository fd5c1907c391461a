package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"pixelwall/internal/entity"
)

func pixelPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestUploadNormalizesImage(t *testing.T) {
	repo := newMemRepo()
	svc := NewArtworkService(repo)
	owner := seedUser(t, repo, "owner", false)

	artwork, err := svc.Upload(context.Background(), owner, "  Sunset  ", "sunset.png", bytes.NewReader(pixelPNG(t)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if artwork.Name != "Sunset" {
		t.Fatalf("expected trimmed name, got %q", artwork.Name)
	}
	if artwork.ModerationStatus != entity.StatusUnmoderated {
		t.Fatalf("expected unmoderated status, got %s", artwork.ModerationStatus)
	}
	if artwork.Location != entity.LocationNone {
		t.Fatalf("expected no location, got %s", artwork.Location)
	}
	if len(artwork.PixelData) == 0 {
		t.Fatal("expected pixel data")
	}
	if got := repo.eventCount(entity.EventArtworkUploaded); got != 1 {
		t.Fatalf("expected 1 upload event, got %d", got)
	}
}

func TestUploadRejectsUnsupportedFormat(t *testing.T) {
	repo := newMemRepo()
	svc := NewArtworkService(repo)
	owner := seedUser(t, repo, "owner", false)

	_, err := svc.Upload(context.Background(), owner, "bad", "notes.txt", bytes.NewReader([]byte("plain text")))
	if !errors.Is(err, entity.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestImageReturnsPixelData(t *testing.T) {
	repo := newMemRepo()
	svc := NewArtworkService(repo)
	owner := seedUser(t, repo, "owner", false)

	uploaded, err := svc.Upload(context.Background(), owner, "Sunset", "sunset.png", bytes.NewReader(pixelPNG(t)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	data, err := svc.Image(context.Background(), uploaded.ID)
	if err != nil {
		t.Fatalf("image: %v", err)
	}
	if !bytes.Equal(data, uploaded.PixelData) {
		t.Fatal("served bytes should match stored pixel data")
	}

	if _, err := svc.Image(context.Background(), 999); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// Full path from upload through approval to gallery visibility.
func TestSubmissionLifecycle(t *testing.T) {
	repo := newMemRepo()
	artworks := NewArtworkService(repo)
	moderation := NewModerationService(repo, newMemStore())
	voting := NewVotingService(repo)
	gallery := NewGalleryService(repo)

	owner := seedUser(t, repo, "owner", false)
	moderator := seedUser(t, repo, "mod", true)
	voter := seedUser(t, repo, "voter", false)

	uploaded, err := artworks.Upload(context.Background(), owner, "Sunset", "sunset.png", bytes.NewReader(pixelPNG(t)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if _, err := moderation.RequestModeration(context.Background(), owner, uploaded.ID); err != nil {
		t.Fatalf("request moderation: %v", err)
	}
	approved, err := moderation.Approve(context.Background(), moderator, uploaded.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := moderation.AssignLocation(context.Background(), moderator, approved.ID, "lobby"); err != nil {
		t.Fatalf("assign location: %v", err)
	}

	if err := voting.CastVote(context.Background(), voter, approved.ID, entity.VoteUp); err != nil {
		t.Fatalf("vote: %v", err)
	}

	items, err := gallery.Visible(context.Background(), nil, "lobby")
	if err != nil {
		t.Fatalf("gallery: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 gallery item, got %d", len(items))
	}
	item := items[0]
	if item.Identifier != approved.Identifier || item.VoteTotal != 1 {
		t.Fatalf("unexpected gallery item: %+v", item)
	}

	if err := voting.ResetVotes(context.Background(), moderator, approved.ID, "end of season"); err != nil {
		t.Fatalf("reset votes: %v", err)
	}
	total, err := voting.VoteTotal(context.Background(), approved.ID)
	if err != nil {
		t.Fatalf("vote total: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected total 0 after reset, got %d", total)
	}

	mine, err := artworks.Mine(context.Background(), owner)
	if err != nil {
		t.Fatalf("mine: %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("expected 1 owned artwork, got %d", len(mine))
	}
}
