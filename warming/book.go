package warming

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrPersistence wraps any adapter failure; the Book is left untouched.
	ErrPersistence = errors.New("warming: falha ao persistir")
	// ErrNotFound is returned when the record does not exist for the owner.
	ErrNotFound = errors.New("warming: registro não encontrado")
	ErrNoOwner  = errors.New("warming: usuário não informado")
)

// Adapter is the storage contract the import flow depends on. Every call is
// scoped to ownerID. InsertMany is atomic per batch and returns the records
// as persisted (with IDs).
type Adapter[T any] interface {
	List(ctx context.Context, ownerID int64) ([]T, error)
	InsertMany(ctx context.Context, ownerID int64, records []T) ([]T, error)
	DeleteOne(ctx context.Context, ownerID int64, id int64) error
}

// Book is the owner's in-memory view of one record type. Import and Delete
// keep it in sync with the adapter without a full reload.
// A Book is not safe for concurrent use.
type Book[T any] struct {
	owner   int64
	kind    Kind[T]
	store   Adapter[T]
	records []T
}

func NewBook[T any](ownerID int64, kind Kind[T], store Adapter[T]) *Book[T] {
	return &Book[T]{owner: ownerID, kind: kind, store: store}
}

func (b *Book[T]) Owner() int64 { return b.owner }

func (b *Book[T]) Kind() Kind[T] { return b.kind }

// Load replaces the local records with the adapter's current list.
func (b *Book[T]) Load(ctx context.Context) error {
	if b.owner <= 0 {
		return ErrNoOwner
	}
	recs, err := b.store.List(ctx, b.owner)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	b.records = recs
	return nil
}

// Records returns a copy of the local records, newest first.
func (b *Book[T]) Records() []T {
	out := make([]T, len(b.records))
	copy(out, b.records)
	return out
}

func (b *Book[T]) Len() int { return len(b.records) }

// Keys returns the natural keys already known for the owner.
func (b *Book[T]) Keys() map[string]struct{} {
	keys := make(map[string]struct{}, len(b.records))
	for _, r := range b.records {
		keys[b.kind.Key(r)] = struct{}{}
	}
	return keys
}

// prepend adds a freshly saved batch in newest-first order, matching List.
func (b *Book[T]) prepend(recs []T) {
	merged := make([]T, 0, len(recs)+len(b.records))
	for i := len(recs) - 1; i >= 0; i-- {
		merged = append(merged, recs[i])
	}
	merged = append(merged, b.records...)
	b.records = merged
}

func (b *Book[T]) remove(id int64) {
	kept := b.records[:0:0]
	for _, r := range b.records {
		if b.kind.ID(r) != id {
			kept = append(kept, r)
		}
	}
	b.records = kept
}
