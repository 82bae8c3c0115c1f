package redisad_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "vista_hostel/internal/adapters/redis"
	"vista_hostel/internal/domain"
)

func TestSessionStore_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	st := redisad.NewSessionStore(mr.Addr(), "", 0)
	ctx := context.Background()

	// empty slot
	u, err := st.Load(ctx)
	if err != nil || u != nil {
		t.Fatalf("expected empty slot, got %+v / %v", u, err)
	}

	want := domain.User{ID: "u-1", Name: "sam", Email: "sam@example.com"}
	if err := st.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	u, err = st.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if u == nil || *u != want {
		t.Fatalf("unexpected user: %+v", u)
	}

	if err := st.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	u, err = st.Load(ctx)
	if err != nil || u != nil {
		t.Fatalf("expected cleared slot, got %+v / %v", u, err)
	}
}

func TestSessionStore_CorruptBlob(t *testing.T) {
	mr := miniredis.RunT(t)
	st := redisad.NewSessionStore(mr.Addr(), "", 0)

	if err := mr.Set("vista:session", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	_, err := st.Load(context.Background())
	if !errors.Is(err, domain.ErrCorruptSession) {
		t.Fatalf("expected ErrCorruptSession, got %v", err)
	}
}
