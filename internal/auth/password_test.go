package auth

import (
	"errors"
	"testing"

	"pixelwall/internal/entity"
)

func TestPasswordHashingLifecycle(t *testing.T) {
	password := "S3curePass!"
	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("unexpected error hashing password: %v", err)
	}
	if hash == "" {
		t.Fatal("expected hash to be populated")
	}

	if !VerifyPassword(password, hash) {
		t.Fatal("expected password to verify")
	}

	if VerifyPassword("wrong", hash) {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("   "); err == nil {
		t.Fatal("expected error for blank password")
	}
}

func TestVerifyPasswordEmptyHash(t *testing.T) {
	if VerifyPassword("anything", "  ") {
		t.Fatal("expected verification to fail for empty hash")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); !errors.Is(err, entity.ErrInvalidAction) {
		t.Fatalf("expected ErrInvalidAction for short password, got %v", err)
	}
	if err := ValidatePassword("long-enough-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}
