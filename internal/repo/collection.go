package repo

import (
	"context"
	"fmt"

	"github.com/alvesgeorge/PlanerTrip/internal/codec"
	"github.com/alvesgeorge/PlanerTrip/internal/domain"
)

// collection is one serialized list under one key.
type collection[T Record] struct {
	r   *Repository
	key string

	// tripID, when set, names the parent trip; writes fail with
	// domain.ErrNotFound once that trip no longer exists.
	tripID string

	// fallback supplies the list when key has never been written.
	fallback func(ctx context.Context) ([]T, error)

	// legacy decodes a stored blob that is not a JSON array. The next write
	// stores the list as JSON.
	legacy func(blob string) ([]T, int)
}

// list returns the stored records in stored order. Records that fail to
// decode, or decode without an ID, are logged and skipped.
func (c collection[T]) list(ctx context.Context) ([]T, error) {
	blob, ok, err := c.r.store.Get(ctx, c.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		if c.fallback != nil {
			return c.fallback(ctx)
		}
		return []T{}, nil
	}

	var items []T
	var skipped int
	if c.legacy != nil && !codec.IsJSONList(blob) {
		items, skipped = c.legacy(blob)
	} else {
		items, skipped = codec.DecodeList[T](blob)
	}
	kept := items[:0]
	for _, it := range items {
		if it.RecordID() == "" {
			skipped++
			continue
		}
		kept = append(kept, it)
	}
	if skipped > 0 {
		c.r.log.Warn("skipped undecodable records", "key", c.key, "skipped", skipped)
	}
	return kept, nil
}

// get is a linear search over list.
func (c collection[T]) get(ctx context.Context, id string) (T, error) {
	var zero T
	items, err := c.list(ctx)
	if err != nil {
		return zero, err
	}
	if i := indexOf(items, id); i >= 0 {
		return items[i], nil
	}
	return zero, domain.ErrNotFound
}

// save replaces the first record with the same ID in place, or appends.
func (c collection[T]) save(ctx context.Context, item T) error {
	unlock := c.r.locks.lock(c.key)
	defer unlock()

	items, err := c.loadForWrite(ctx)
	if err != nil {
		return err
	}
	if i := indexOf(items, item.RecordID()); i >= 0 {
		items[i] = item
	} else {
		items = append(items, item)
	}
	return c.write(ctx, items)
}

// replace overwrites the whole list.
func (c collection[T]) replace(ctx context.Context, items []T) error {
	unlock := c.r.locks.lock(c.key)
	defer unlock()

	if err := c.checkParent(ctx); err != nil {
		return err
	}
	return c.write(ctx, items)
}

// delete removes every record with id. Deleting an absent ID writes nothing
// and is not an error.
func (c collection[T]) delete(ctx context.Context, id string) error {
	unlock := c.r.locks.lock(c.key)
	defer unlock()

	items, err := c.list(ctx)
	if err != nil {
		return err
	}
	kept := make([]T, 0, len(items))
	for _, it := range items {
		if it.RecordID() != id {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return c.write(ctx, kept)
}

// modify applies fn to the record with id and stores the result, all under
// the key lock.
func (c collection[T]) modify(ctx context.Context, id string, fn func(*T)) (T, error) {
	unlock := c.r.locks.lock(c.key)
	defer unlock()

	var zero T
	items, err := c.loadForWrite(ctx)
	if err != nil {
		return zero, err
	}
	i := indexOf(items, id)
	if i < 0 {
		return zero, domain.ErrNotFound
	}
	fn(&items[i])
	if err := c.write(ctx, items); err != nil {
		return zero, err
	}
	return items[i], nil
}

func (c collection[T]) loadForWrite(ctx context.Context) ([]T, error) {
	if err := c.checkParent(ctx); err != nil {
		return nil, err
	}
	return c.list(ctx)
}

// checkParent must run with the key lock held: DeleteTrip takes the same
// lock before cascading, so a write either lands before the cascade or sees
// the trip gone.
func (c collection[T]) checkParent(ctx context.Context) error {
	if c.tripID == "" {
		return nil
	}
	if _, err := c.r.trips().get(ctx, c.tripID); err != nil {
		return fmt.Errorf("trip %s: %w", c.tripID, err)
	}
	return nil
}

func (c collection[T]) write(ctx context.Context, items []T) error {
	blob, err := codec.EncodeList(items)
	if err != nil {
		return err
	}
	return c.r.store.Set(ctx, c.key, blob)
}

func indexOf[T Record](items []T, id string) int {
	for i, it := range items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}
