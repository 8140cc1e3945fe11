package consumable

import (
	"slices"

	"github.com/lif0/go-consumable/internal"
)

// SharedCollection is a handle to one Collection that is safe for concurrent use.
//
// Copying a SharedCollection (or calling Clone) gives another handle to the same storage,
// so a handle can be passed by value to every producer and consumer goroutine. All
// operations on the same storage are serialized by a single mutex.
//
// If an operation panics while holding the lock, the storage is poisoned and every later
// operation returns an error wrapping ErrPoisoned.
//
// Use NewShared to create a new instance. The zero value is invalid.
type SharedCollection struct {
	guard   *internal.Guard[Collection]
	metrics *metrics
}

// NewShared creates a SharedCollection holding a copy of items. A nil slice gives an empty one.
func NewShared(items []string, options ...Option) SharedCollection {
	cfg := newDefaultConfig()
	for _, opt := range options {
		opt(cfg)
	}

	s := SharedCollection{
		guard:   internal.NewGuard(*NewCollection(items)),
		metrics: cfg.metrics,
	}
	s.metrics.added(len(items))
	s.metrics.size(len(items))

	return s
}

// Clone returns another handle to the same storage.
func (s SharedCollection) Clone() SharedCollection {
	return s
}

// Add appends item to the end of the collection.
func (s SharedCollection) Add(item string) error {
	err := s.do(func(c *Collection) {
		c.Add(item)
		s.metrics.size(c.Len())
	})
	if err != nil {
		return err
	}

	s.metrics.added(1)
	return nil
}

// AddAll appends items in order under a single lock acquisition.
func (s SharedCollection) AddAll(items ...string) error {
	if len(items) == 0 {
		return nil
	}

	err := s.do(func(c *Collection) {
		c.items = append(c.items, items...)
		s.metrics.size(c.Len())
	})
	if err != nil {
		return err
	}

	s.metrics.added(len(items))
	return nil
}

// Consume atomically takes out every record matching pattern. See Collection.Consume.
//
// Two concurrent calls never receive the same record. If nothing matches, Consume
// returns (nil, nil) immediately.
func (s SharedCollection) Consume(pattern string) (*Collection, error) {
	return s.consume(func(c *Collection) *Collection {
		return c.Consume(pattern)
	})
}

// ConsumeFunc atomically takes out every record for which match returns true.
//
// match runs while the lock is held and must not call back into s.
func (s SharedCollection) ConsumeFunc(match func(item string) bool) (*Collection, error) {
	return s.consume(func(c *Collection) *Collection {
		return c.ConsumeFunc(match)
	})
}

// Drain takes out all records. It returns (nil, nil) when the collection is empty.
func (s SharedCollection) Drain() (*Collection, error) {
	return s.consume(func(c *Collection) *Collection {
		if c.IsEmpty() {
			return nil
		}
		batch := &Collection{items: c.items}
		c.items = nil
		return batch
	})
}

// Clear removes all records.
func (s SharedCollection) Clear() error {
	return s.do(func(c *Collection) {
		c.Clear()
		s.metrics.size(0)
	})
}

func (s SharedCollection) Len() (int, error) {
	var n int
	err := s.do(func(c *Collection) {
		n = c.Len()
	})
	return n, err
}

func (s SharedCollection) IsEmpty() (bool, error) {
	n, err := s.Len()
	return n == 0, err
}

// Snapshot returns a copy of the current records.
func (s SharedCollection) Snapshot() ([]string, error) {
	var items []string
	err := s.do(func(c *Collection) {
		items = slices.Clone(c.items)
	})
	return items, err
}

// Poisoned reports whether a panic left the storage unusable.
func (s SharedCollection) Poisoned() bool {
	return s.guard != nil && s.guard.Poisoned()
}

func (s SharedCollection) consume(f func(c *Collection) *Collection) (*Collection, error) {
	var batch *Collection
	err := s.do(func(c *Collection) {
		batch = f(c)
		if batch != nil {
			s.metrics.size(c.Len())
		}
	})
	if err != nil {
		return nil, err
	}

	var n int
	if batch != nil {
		n = batch.Len()
	}

	s.metrics.consumed(n)
	return batch, nil
}

func (s SharedCollection) do(f func(c *Collection)) error {
	if s.guard == nil {
		return ErrNotInitialized
	}
	return s.guard.Do(f)
}
