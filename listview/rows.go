// Package listview keeps the cafe and employee lists the console shows. The
// lists are a cache of the API: refetched on activation and after each change.
package listview

import (
	"errors"
	"log"
	"sync"
)

var (
	ErrNotConfirmed = errors.New("delete not confirmed")
	ErrNotFound     = errors.New("row not found")
)

// rows is an ordered list of records tagged with the sequence number of the
// request that produced it. A response older than the one last applied is
// dropped, so a slow fetch cannot bring back a row a newer delete removed.
type rows[T any] struct {
	name string
	id   func(T) string

	mu      sync.Mutex
	items   []T
	loaded  bool
	issued  uint64
	applied uint64
}

// begin numbers a request about to be sent.
func (r *rows[T]) begin() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issued++
	return r.issued
}

// replace installs a fetched list unless a newer response was applied first.
func (r *rows[T]) replace(seq uint64, items []T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq < r.applied {
		log.Printf("listview: dropping stale %s response seq=%d applied=%d", r.name, seq, r.applied)
		return false
	}
	r.items = append([]T(nil), items...)
	r.loaded = true
	r.applied = seq
	return true
}

// remove drops the row with id, keeping the order of the others.
func (r *rows[T]) remove(seq uint64, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if seq > r.applied {
		r.applied = seq
	}
	for i, item := range r.items {
		if r.id(item) == id {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

func (r *rows[T]) snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]T(nil), r.items...)
}

func (r *rows[T]) find(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if r.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (r *rows[T]) isLoaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}
