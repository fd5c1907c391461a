package service

import (
	"context"
	"errors"
	"testing"

	"pixelwall/internal/entity"
)

func TestAuditEventsModeratorOnly(t *testing.T) {
	repo := newMemRepo()
	svc := NewAuditService(repo)
	user := seedUser(t, repo, "user", false)
	moderator := seedUser(t, repo, "mod", true)

	if err := repo.AppendTransactionLog(context.Background(), entity.EventUserLogin, "User 'user' logged in."); err != nil {
		t.Fatalf("append log: %v", err)
	}
	if err := repo.AppendTransactionLog(context.Background(), entity.EventUserLogout, "User 'user' logged out."); err != nil {
		t.Fatalf("append log: %v", err)
	}

	if _, err := svc.Events(context.Background(), user); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for regular user, got %v", err)
	}
	if _, err := svc.Events(context.Background(), nil); !errors.Is(err, entity.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for anonymous, got %v", err)
	}

	events, err := svc.Events(context.Background(), moderator)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// newest first
	if events[0].EventType != entity.EventUserLogout {
		t.Fatalf("expected logout first, got %s", events[0].EventType)
	}
}
