package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.SetNotes(ctx, "attempt-1", map[string]string{"channel": "sms", "code": "123456"}, time.Minute)
	if err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}

	notes, err := store.GetNotes(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("GetNotes() error = %v", err)
	}
	if notes["channel"] != "sms" || notes["code"] != "123456" {
		t.Fatalf("GetNotes() = %v, want channel=sms code=123456", notes)
	}
}

func TestMemoryStoreMergesLaterWrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.SetNotes(ctx, "attempt-1", map[string]string{"channel": "email"}, time.Minute); err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}
	if err := store.SetNotes(ctx, "attempt-1", map[string]string{"code": "654321"}, time.Minute); err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}

	notes, err := store.GetNotes(ctx, "attempt-1")
	if err != nil {
		t.Fatalf("GetNotes() error = %v", err)
	}
	if notes["channel"] != "email" || notes["code"] != "654321" {
		t.Fatalf("GetNotes() = %v, want both notes present", notes)
	}
}

func TestMemoryStoreReturnedNotesAreACopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.SetNotes(ctx, "attempt-1", map[string]string{"code": "123456"}, time.Minute); err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}

	notes, _ := store.GetNotes(ctx, "attempt-1")
	notes["code"] = "tampered"

	again, _ := store.GetNotes(ctx, "attempt-1")
	if again["code"] != "123456" {
		t.Fatalf("stored note mutated through returned map: %v", again)
	}
}

func TestMemoryStoreUnknownAttempt(t *testing.T) {
	store := NewMemoryStore()

	if _, err := store.GetNotes(context.Background(), "ghost"); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("GetNotes() error = %v, want ErrAttemptNotFound", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.SetNotes(ctx, "attempt-1", map[string]string{"code": "123456"}, -time.Second); err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}

	if _, err := store.GetNotes(ctx, "attempt-1"); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("GetNotes() after expiry error = %v, want ErrAttemptNotFound", err)
	}
}

func TestMemoryStoreClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.SetNotes(ctx, "attempt-1", map[string]string{"code": "123456"}, time.Minute); err != nil {
		t.Fatalf("SetNotes() error = %v", err)
	}
	if err := store.Clear(ctx, "attempt-1"); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if _, err := store.GetNotes(ctx, "attempt-1"); !errors.Is(err, ErrAttemptNotFound) {
		t.Fatalf("GetNotes() after Clear error = %v, want ErrAttemptNotFound", err)
	}
}
