package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/five82/pigcat/internal/kv"
	"github.com/five82/pigcat/internal/site"
)

// Slice is one independently keyed unit of durable state.
// It is not safe for concurrent use; Store serialises access.
type Slice[T any] struct {
	key      string
	value    T
	fallback func() T
	decode   func([]byte) (T, error)
	clone    func(T) T
}

// NewSlice describes a slice stored as JSON under key. decode and clone may be
// nil, in which case encoding/json and a shallow copy are used.
func NewSlice[T any](key string, fallback func() T, decode func([]byte) (T, error), clone func(T) T) *Slice[T] {
	if decode == nil {
		decode = func(raw []byte) (T, error) {
			var v T
			err := json.Unmarshal(raw, &v)
			return v, err
		}
	}
	if clone == nil {
		clone = func(v T) T { return v }
	}
	return &Slice[T]{key: key, value: fallback(), fallback: fallback, decode: decode, clone: clone}
}

// Key returns the slice's storage key.
func (s *Slice[T]) Key() string { return s.key }

// Get returns a copy of the current value.
func (s *Slice[T]) Get() T { return s.clone(s.value) }

// Load reads the slice from store. An absent record yields the default. A
// record that fails to decode also yields the default and is reported as a
// *site.DecodeError; any other error is a storage failure and leaves the
// current value untouched.
func (s *Slice[T]) Load(ctx context.Context, store kv.Store) error {
	raw, ok, err := store.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", s.key, err)
	}
	if !ok {
		s.value = s.fallback()
		return nil
	}
	v, err := s.decode([]byte(raw))
	if err != nil {
		s.value = s.fallback()
		return &site.DecodeError{Key: s.key, Err: err}
	}
	s.value = v
	return nil
}

// Set encodes v, writes it over the stored record, and commits it in memory.
func (s *Slice[T]) Set(ctx context.Context, store kv.Store, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := store.Set(ctx, s.key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	s.value = s.clone(v)
	return nil
}

// Reset deletes the stored record so the next load yields the default, and
// commits the default in memory.
func (s *Slice[T]) Reset(ctx context.Context, store kv.Store) error {
	if err := store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("delete %s: %w", s.key, err)
	}
	s.value = s.fallback()
	return nil
}

// Update applies fn to a copy of the current value and persists the result.
func (s *Slice[T]) Update(ctx context.Context, store kv.Store, fn func(T) T) error {
	return s.Set(ctx, store, fn(s.Get()))
}
