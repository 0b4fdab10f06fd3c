package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/shopease/console-gateway/internal/core/domain"
)

func newTestStore(t *testing.T) (*TokenStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewTokenStore(client), mr
}

func TestTokenStore_SaveAndLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "access-abc", "refresh-xyz"); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, refresh, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "access-abc" || refresh != "refresh-xyz" {
		t.Fatalf("unexpected pair: %q %q", token, refresh)
	}
}

func TestTokenStore_LoadEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	_, _, err := store.Load(context.Background())
	if !errors.Is(err, domain.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestTokenStore_TornWriteTreatedAsMissing(t *testing.T) {
	store, mr := newTestStore(t)

	// Only the refresh token present: a partial state no well-behaved writer
	// produces, so the store fails closed.
	mr.Set(keyRefreshToken, "refresh-only")

	_, _, err := store.Load(context.Background())
	if !errors.Is(err, domain.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing, got %v", err)
	}
}

func TestTokenStore_ClearRemovesBothKeys(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "access", "refresh"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if mr.Exists(keyToken) || mr.Exists(keyRefreshToken) {
		t.Fatalf("expected both keys removed")
	}
	if _, _, err := store.Load(ctx); !errors.Is(err, domain.ErrTokenMissing) {
		t.Fatalf("expected ErrTokenMissing after clear, got %v", err)
	}
}

func TestTokenStore_ClearEmptyStore(t *testing.T) {
	store, _ := newTestStore(t)
	if err := store.Clear(context.Background()); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}
}

func TestTokenStore_SurvivesReplacement(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, "first", "first-r"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, "second", "second-r"); err != nil {
		t.Fatalf("save: %v", err)
	}

	token, refresh, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if token != "second" || refresh != "second-r" {
		t.Fatalf("expected wholesale replacement, got %q %q", token, refresh)
	}
}
