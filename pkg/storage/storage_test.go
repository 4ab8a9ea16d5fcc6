package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pacmaze/pkg/errors"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	defer s.Close()

	if _, err := s.Latest(ctx, "octocat", "dark"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Fatalf("empty store: error = %v, want NOT_FOUND", err)
	}

	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []*Record{
		{Login: "OctoCat", Theme: "dark", Seed: 1, CreatedAt: base},
		{Login: "octocat", Theme: "dark", Seed: 2, CreatedAt: base.Add(time.Hour)},
		{Login: "octocat", Theme: "light", Seed: 3, CreatedAt: base.Add(2 * time.Hour)},
		{Login: "someone", Theme: "dark", Seed: 4, CreatedAt: base.Add(3 * time.Hour)},
	}
	for _, r := range records {
		if err := s.Save(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Latest(ctx, "OCTOCAT", "dark")
	if err != nil {
		t.Fatalf("Latest() error: %v", err)
	}
	if got.Seed != 2 {
		t.Errorf("Latest() seed = %d, want 2", got.Seed)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestSaveAssignsIdentity(t *testing.T) {
	r := &Record{Login: "Octocat", Theme: "dark"}
	if err := NewMemoryStore().Save(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("ID %q is not a uuid: %v", r.ID, err)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if r.Login != "octocat" {
		t.Errorf("Login = %q, want lowercased", r.Login)
	}

	kept := &Record{ID: "fixed", CreatedAt: time.Unix(1, 0)}
	NullStore{}.Save(context.Background(), kept)
	if kept.ID != "fixed" || kept.CreatedAt.Unix() != 1 {
		t.Error("existing ID and time should be kept")
	}
}

func TestMemoryStoreConcurrent(t *testing.T) {
	s := NewMemoryStore()
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Save(context.Background(), &Record{Login: "octocat", Theme: "dark", Seed: uint64(i)})
			s.Latest(context.Background(), "octocat", "dark")
		}()
	}
	wg.Wait()
	if s.Len() != 50 {
		t.Errorf("Len() = %d, want 50", s.Len())
	}
}

func TestOpenWithoutURI(t *testing.T) {
	s, err := Open(context.Background(), "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(NullStore); !ok {
		t.Errorf("Open(\"\") = %T, want NullStore", s)
	}
	if _, err := s.Latest(context.Background(), "octocat", "dark"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("NullStore.Latest() error = %v", err)
	}
}
