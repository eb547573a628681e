package warming

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

/************************************************
/**** MARK: IMPORT STATUS ****/
/************************************************/
const IMPORT_STATUS_EMPTY = "empty"
const IMPORT_STATUS_NO_VALID = "no_valid"
const IMPORT_STATUS_NOTHING_NEW = "nothing_new"
const IMPORT_STATUS_FAILED = "failed"
const IMPORT_STATUS_SAVED = "saved"

// Result describes a bulk import at batch level. Per-line feedback is not
// produced: malformed lines and duplicates only show up in the counters.
type Result[T any] struct {
	Status     string `json:"status"`
	Parsed     int    `json:"parsed"`
	Valid      int    `json:"valid"`
	Duplicates int    `json:"duplicates"`
	Inserted   []T    `json:"inserted"`
}

// Import runs parse, validate and dedupe over text and persists the surviving
// records through the book's adapter. On success the records are added to
// the book. Only a persistence failure (or a missing owner) returns an error.
func Import[T any](ctx context.Context, b *Book[T], text string) (Result[T], error) {
	res := Result[T]{Status: IMPORT_STATUS_EMPTY, Inserted: []T{}}
	if b.owner <= 0 {
		return res, ErrNoOwner
	}
	if strings.TrimSpace(text) == "" {
		return res, nil
	}

	lines := ParseLines(text)
	res.Parsed = len(lines)

	candidates := make([]T, 0, len(lines))
	for _, l := range lines {
		candidates = append(candidates, b.kind.Build(l))
	}

	valid := Validate(b.kind, candidates)
	res.Valid = len(valid)
	if len(valid) == 0 {
		res.Status = IMPORT_STATUS_NO_VALID
		return res, nil
	}

	fresh := Dedupe(b.kind, valid, b.Keys())
	res.Duplicates = len(valid) - len(fresh)
	if len(fresh) == 0 {
		res.Status = IMPORT_STATUS_NOTHING_NEW
		return res, nil
	}

	for i := range fresh {
		b.kind.Assign(&fresh[i], b.owner)
	}

	saved, err := b.store.InsertMany(ctx, b.owner, fresh)
	if err != nil {
		res.Status = IMPORT_STATUS_FAILED
		return res, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	b.prepend(saved)
	res.Inserted = saved
	res.Status = IMPORT_STATUS_SAVED
	return res, nil
}

// Delete removes one record of the owner and drops it from the book.
func Delete[T any](ctx context.Context, b *Book[T], id int64) error {
	if b.owner <= 0 {
		return ErrNoOwner
	}
	if err := b.store.DeleteOne(ctx, b.owner, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	b.remove(id)
	return nil
}
