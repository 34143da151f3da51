package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/robalobadob/arena/internal/game"
)

func newSession() *game.Session {
	return game.NewSession(nil, game.WithLogger(zerolog.Nop()))
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	s := newSession()

	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, s.ID())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Fatal("Get returned a different session")
	}
}

func TestGetUnknown(t *testing.T) {
	_, err := NewMemoryStore().Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListKeepsFirstSaveOrder(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	a, b := newSession(), newSession()
	for _, s := range []*game.Session{a, b, a} {
		if err := st.Save(ctx, s); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	list, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0] != a || list[1] != b {
		t.Fatalf("list = %v, want [a b]", list)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := NewMemoryStore().Save(ctx, newSession()); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestConcurrentSave(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Save(ctx, newSession())
		}()
	}
	wg.Wait()
	list, _ := st.List(ctx)
	if len(list) != 16 {
		t.Fatalf("sessions = %d, want 16", len(list))
	}
}
