// Package memory is an in-memory test double for the text-file collections.
package memory

import (
	"context"
	"slices"
	"sync"
)

// Collection keeps records in memory with the same load-all/save-all
// contract as the text-file store. Callers always get copies.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T

	loadErr error
	saveErr error
	saves   int
}

func NewCollection[T any](items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.loadErr != nil {
		return nil, c.loadErr
	}
	out := slices.Clone(c.items)
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *Collection[T]) SaveAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.saveErr != nil {
		return c.saveErr
	}
	c.items = slices.Clone(items)
	c.saves++
	return nil
}

// FailLoads makes every later LoadAll return err; nil clears it.
func (c *Collection[T]) FailLoads(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadErr = err
}

// FailSaves makes every later SaveAll return err and keep the old
// contents; nil clears it.
func (c *Collection[T]) FailSaves(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saveErr = err
}

// Saves counts successful SaveAll calls.
func (c *Collection[T]) Saves() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.saves
}
