package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

// MemoryOption configures a Memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	now        func() time.Time
	defaultTTL time.Duration
	maxEntries int
}

// WithDefaultTTL sets the ttl used when Set gets zero. Default one hour.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.defaultTTL = d
	}
}

// WithMaxEntries bounds the cache; the least recently used entry is evicted
// when it is full. Zero means unbounded.
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = n
	}
}

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) MemoryOption {
	return func(o *memoryOptions) {
		if now != nil {
			o.now = now
		}
	}
}

type memoryEntry[V any] struct {
	expires time.Time
	value   V
	key     string
}

// Memory is an in-process LRU cache with per-entry expiry. Expired entries
// are dropped lazily when touched or when they reach the LRU tail.
type Memory[V any] struct {
	items  map[string]*list.Element
	order  *list.List // front is most recent
	opts   memoryOptions
	mu     sync.Mutex
	closed bool
}

// NewMemory creates an empty cache.
func NewMemory[V any](opts ...MemoryOption) *Memory[V] {
	o := memoryOptions{defaultTTL: time.Hour, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &Memory[V]{
		items: make(map[string]*list.Element),
		order: list.New(),
		opts:  o,
	}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var zero V
	if m.closed {
		return zero, ErrClosed
	}

	el, ok := m.items[key]
	if !ok {
		return zero, ErrNotFound
	}
	e := el.Value.(*memoryEntry[V])
	if m.expired(e) {
		m.remove(el)
		return zero, ErrNotFound
	}
	m.order.MoveToFront(el)
	return e.value, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	if ttl == 0 {
		ttl = m.opts.defaultTTL
	}
	var expires time.Time
	if ttl > 0 {
		expires = m.opts.now().Add(ttl)
	}

	if el, ok := m.items[key]; ok {
		e := el.Value.(*memoryEntry[V])
		e.value, e.expires = value, expires
		m.order.MoveToFront(el)
		return nil
	}

	if m.opts.maxEntries > 0 {
		for len(m.items) >= m.opts.maxEntries {
			m.remove(m.order.Back())
		}
	}
	m.items[key] = m.order.PushFront(&memoryEntry[V]{key: key, value: value, expires: expires})
	return nil
}

func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	if el, ok := m.items[key]; ok {
		m.remove(el)
	}
	return nil
}

func (m *Memory[V]) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	clear(m.items)
	m.order.Init()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory[V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close drops all entries. Later calls fail with ErrClosed.
func (m *Memory[V]) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	clear(m.items)
	m.order.Init()
	return nil
}

func (m *Memory[V]) expired(e *memoryEntry[V]) bool {
	return !e.expires.IsZero() && !m.opts.now().Before(e.expires)
}

func (m *Memory[V]) remove(el *list.Element) {
	m.order.Remove(el)
	delete(m.items, el.Value.(*memoryEntry[V]).key)
}

var _ Cache[string] = (*Memory[string])(nil)
