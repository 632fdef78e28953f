// Package collection holds one entity kind's records in memory as an
// ordered sequence and persists them as a single JSON document.
package collection

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rpggio/farmrec/internal/repository"
)

// DataLoadError reports a persisted document that exists but cannot be decoded.
type DataLoadError struct {
	Document string
	Err      error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Document, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, repository.ErrDataLoad) hold.
func (e *DataLoadError) Is(target error) bool {
	return target == repository.ErrDataLoad
}

// Collection is an ordered sequence of records keyed by K. Mutations only
// touch memory; Save writes the whole sequence back to its document.
type Collection[K comparable, T any] struct {
	mu        sync.RWMutex
	name      string
	store     repository.DocumentStore
	keyOf     func(T) K
	items     []T
	persisted bool
}

// New binds a collection to the document name in store.
func New[K comparable, T any](store repository.DocumentStore, name string, keyOf func(T) K) *Collection[K, T] {
	return &Collection[K, T]{
		name:  name,
		store: store,
		keyOf: keyOf,
		items: []T{},
	}
}

// Load replaces the in-memory sequence with the persisted document. A missing
// document yields an empty sequence. A malformed one leaves the sequence empty
// and returns a *DataLoadError.
func (c *Collection[K, T]) Load(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = []T{}
	c.persisted = false

	data, err := c.store.ReadDocument(ctx, c.name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.name, err)
	}
	c.persisted = true

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return &DataLoadError{Document: c.name, Err: err}
	}
	if items != nil {
		c.items = items
	}
	return nil
}

// Save overwrites the document with the whole in-memory sequence.
func (c *Collection[K, T]) Save(ctx context.Context) error {
	c.mu.RLock()
	data, err := Encode(c.items)
	c.mu.RUnlock()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", c.name, err)
	}

	if err := c.store.WriteDocument(ctx, c.name, data); err != nil {
		return fmt.Errorf("writing %s: %w", c.name, err)
	}

	c.mu.Lock()
	c.persisted = true
	c.mu.Unlock()
	return nil
}

// Persisted reports whether the document existed at the last Load or has
// been written since.
func (c *Collection[K, T]) Persisted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.persisted
}

// Add appends rec. The caller assigns a unique key beforehand.
func (c *Collection[K, T]) Add(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, rec)
}

// Update replaces the first record with the given key.
func (c *Collection[K, T]) Update(key K, rec T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.keyOf(c.items[i]) == key {
			c.items[i] = rec
			return true
		}
	}
	return false
}

// Delete removes every record with the given key and returns how many were removed.
func (c *Collection[K, T]) Delete(key K) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		return c.keyOf(item) == key
	})
	return before - len(c.items)
}

// Get returns the first record with the given key.
func (c *Collection[K, T]) Get(key K) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if c.keyOf(item) == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// All returns a copy of the sequence in insertion order.
func (c *Collection[K, T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.items)
}

// Replace swaps the in-memory sequence for a copy of items. Services use it
// to restore a snapshot taken before a mutation whose save failed.
func (c *Collection[K, T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
	if c.items == nil {
		c.items = []T{}
	}
}

// Find returns the records matching pred, in order.
func (c *Collection[K, T]) Find(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := []T{}
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of records.
func (c *Collection[K, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// KeepLast drops the oldest records so at most n remain.
func (c *Collection[K, T]) KeepLast(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 || len(c.items) <= n {
		return
	}
	c.items = slices.Clone(c.items[len(c.items)-n:])
}

// NextID returns one more than the highest id among items, or 1 when there
// are none. Unlike len+1 it cannot collide with a live id after deletions.
func NextID[T any](items []T, idOf func(T) int) int {
	next := 1
	for _, item := range items {
		if id := idOf(item); id >= next {
			next = id + 1
		}
	}
	return next
}

// Encode renders items the way every collection document is stored:
// UTF-8 kept as is, two-space indentation, "[]" for an empty sequence.
func Encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
