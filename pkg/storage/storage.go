// Package storage archives rendered documents.
//
// The HTTP server records every document it serves so the latest render
// of a user can be returned without touching the GitHub API. [MongoStore]
// persists records in MongoDB; [MemoryStore] keeps them in process and
// [NullStore] discards them.
package storage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/pacmaze/pkg/errors"
)

// Record is one rendered document and the inputs that produced it.
type Record struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Theme     string    `json:"theme"`
	Seed      uint64    `json:"seed"`
	Rows      int       `json:"rows"`
	Cols      int       `json:"cols"`
	Total     int       `json:"total"`
	SVG       []byte    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists records. Implementations must be safe for concurrent use.
type Store interface {
	// Save assigns an ID and creation time when missing and stores r.
	Save(ctx context.Context, r *Record) error
	// Latest returns the newest record for login and theme, or a NOT_FOUND
	// error.
	Latest(ctx context.Context, login, theme string) (*Record, error)
	Close() error
}

// Open connects to MongoDB when uri is set and returns a [NullStore]
// otherwise.
func Open(ctx context.Context, uri, database string) (Store, error) {
	if uri == "" {
		return NullStore{}, nil
	}
	return NewMongoStore(ctx, uri, database)
}

// prepare fills the generated fields of r.
func prepare(r *Record) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	r.Login = strings.ToLower(r.Login)
}

func notFound(login, theme string) error {
	return errors.New(errors.ErrCodeNotFound, "no %s render stored for %s", theme, login)
}

// NullStore discards records.
type NullStore struct{}

func (NullStore) Save(_ context.Context, r *Record) error {
	prepare(r)
	return nil
}

func (NullStore) Latest(_ context.Context, login, theme string) (*Record, error) {
	return nil, notFound(login, theme)
}

func (NullStore) Close() error { return nil }
