package storage

import (
	"context"
	"strings"
	"sync"
)

// MemoryStore keeps records in process, newest last.
type MemoryStore struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Save(_ context.Context, r *Record) error {
	prepare(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, *r)
	return nil
}

func (s *MemoryStore) Latest(_ context.Context, login, theme string) (*Record, error) {
	login = strings.ToLower(login)
	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *Record
	for i := range s.records {
		r := &s.records[i]
		if r.Login != login || r.Theme != theme {
			continue
		}
		if best == nil || !r.CreatedAt.Before(best.CreatedAt) {
			best = r
		}
	}
	if best == nil {
		return nil, notFound(login, theme)
	}
	out := *best
	return &out, nil
}

// Len returns the number of stored records.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *MemoryStore) Close() error { return nil }
