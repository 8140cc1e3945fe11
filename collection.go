package consumable

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Collection is an ordered sequence of string records whose matching entries can be consumed.
//
// A Collection is not safe for concurrent use. Use SharedCollection to hand records
// between goroutines.
type Collection struct {
	items []string
}

// NewCollection creates a Collection holding a copy of items. A nil slice gives an empty one.
func NewCollection(items []string) *Collection {
	return &Collection{
		items: slices.Clone(items),
	}
}

// Add appends item to the end of the collection.
func (c *Collection) Add(item string) {
	c.items = append(c.items, item)
}

// Consume removes every record whose whitespace-trimmed form starts with the trimmed pattern
// and returns them, in their original order, as a new Collection.
//
// The remaining records keep their relative order. If nothing matches, Consume returns nil
// and the collection is left untouched. An empty pattern matches every record.
func (c *Collection) Consume(pattern string) *Collection {
	return c.ConsumeFunc(prefixMatcher(pattern))
}

// ConsumeFunc is like Consume but selects the records for which match returns true.
func (c *Collection) ConsumeFunc(match func(item string) bool) *Collection {
	var (
		taken []string
		n     int
	)
	for _, item := range c.items {
		if match(item) {
			taken = append(taken, item)
			continue
		}
		c.items[n] = item
		n++
	}
	if len(taken) == 0 {
		return nil
	}

	clear(c.items[n:])
	c.items = c.items[:n]

	return &Collection{items: taken}
}

// Clear removes all records.
func (c *Collection) Clear() {
	clear(c.items)
	c.items = c.items[:0]
}

func (c *Collection) Len() int {
	return len(c.items)
}

func (c *Collection) IsEmpty() bool {
	return len(c.items) == 0
}

// Inner returns the current records without copying them.
//
// The slice is only valid until the next mutation and must not be modified.
func (c *Collection) Inner() []string {
	return c.items
}

// All returns an iterator over the current records.
func (c *Collection) All() iter.Seq[string] {
	return slices.Values(c.items)
}

func (c *Collection) String() string {
	return fmt.Sprint(c.items)
}

// AsConsumer returns a Consumer backed by c. Its Consume never fails.
func (c *Collection) AsConsumer() Consumer {
	return collectionConsumer{c: c}
}

type collectionConsumer struct {
	c *Collection
}

func (cc collectionConsumer) Consume(pattern string) (*Collection, error) {
	return cc.c.Consume(pattern), nil
}

func prefixMatcher(pattern string) func(string) bool {
	pattern = strings.TrimSpace(pattern)
	return func(item string) bool {
		return strings.HasPrefix(strings.TrimSpace(item), pattern)
	}
}
