package consumable_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/lif0/go-consumable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCollection(items ...string) *consumable.Collection {
	c := consumable.NewCollection(nil)
	for _, item := range items {
		c.Add(item)
	}
	return c
}

func Test_NewCollection(t *testing.T) {
	t.Parallel()

	t.Run("ok/nilIsEmpty", func(t *testing.T) {
		t.Parallel()
		// act
		c := consumable.NewCollection(nil)
		// assert
		assert.True(t, c.IsEmpty())
		assert.Equal(t, 0, c.Len())
	})

	t.Run("ok/seeded", func(t *testing.T) {
		t.Parallel()
		// act
		c := consumable.NewCollection([]string{"a", "b"})
		// assert
		assert.Equal(t, []string{"a", "b"}, c.Inner())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("edge/doesNotAliasInput", func(t *testing.T) {
		t.Parallel()
		// arrange
		items := []string{"a", "b"}
		c := consumable.NewCollection(items)
		// act
		items[0] = "z"
		// assert
		assert.Equal(t, []string{"a", "b"}, c.Inner())
	})
}

func Test_Collection_Add(t *testing.T) {
	t.Parallel()

	t.Run("ok/keepsInsertionOrderAndDuplicates", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := consumable.NewCollection(nil)
		// act
		c.Add("b")
		c.Add("a")
		c.Add("b")
		// assert
		assert.Equal(t, []string{"b", "a", "b"}, c.Inner())
		assert.Equal(t, []string{"b", "a", "b"}, slices.Collect(c.All()))
		assert.Equal(t, "[b a b]", c.String())
	})
}

func Test_Collection_Consume(t *testing.T) {
	t.Parallel()

	t.Run("ok/noMatchReturnsNil", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("data")
		// act
		got := c.Consume("pattern")
		// assert
		assert.Nil(t, got)
		assert.Equal(t, []string{"data"}, c.Inner())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("ok/singleMatch", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("data", "ata")
		// act
		got := c.Consume("da")
		// assert
		require.NotNil(t, got)
		assert.Equal(t, []string{"data"}, got.Inner())
		assert.Equal(t, []string{"ata"}, c.Inner())
	})

	t.Run("ok/multipleMatchesKeepOrder", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("data", "ata", "data2")
		require.Equal(t, 3, c.Len())
		// act
		got := c.Consume("da")
		// assert
		require.NotNil(t, got)
		assert.Equal(t, []string{"data", "data2"}, got.Inner())
		assert.Equal(t, []string{"ata"}, c.Inner())
		assert.Equal(t, 1, c.Len())
	})

	t.Run("ok/remainderKeepsRelativeOrder", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("x1", "OK", "x2", "OK 2", "x3")
		// act
		got := c.Consume("OK")
		// assert
		require.NotNil(t, got)
		assert.Equal(t, []string{"OK", "OK 2"}, got.Inner())
		assert.Equal(t, []string{"x1", "x2", "x3"}, c.Inner())
	})

	t.Run("ok/secondCallReturnsNil", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("data", "ata", "data2")
		// act
		first := c.Consume("da")
		second := c.Consume("da")
		// assert
		assert.NotNil(t, first)
		assert.Nil(t, second)
		assert.Equal(t, []string{"ata"}, c.Inner())
	})

	t.Run("ok/trimsPatternAndRecords", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("  +CSQ: 21,99\r\n", "OK\r\n", "\t+CSQ: 5,0")
		// act
		got := c.Consume(" +CSQ ")
		// assert
		require.NotNil(t, got)
		assert.Equal(t, []string{"  +CSQ: 21,99\r\n", "\t+CSQ: 5,0"}, got.Inner())
		assert.Equal(t, []string{"OK\r\n"}, c.Inner())
	})

	t.Run("ok/caseSensitive", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("Data")
		// act
		got := c.Consume("da")
		// assert
		assert.Nil(t, got)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("edge/emptyPatternDrainsAll", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("a", " ", "b")
		// act
		got := c.Consume("")
		// assert
		require.NotNil(t, got)
		assert.Equal(t, []string{"a", " ", "b"}, got.Inner())
		assert.True(t, c.IsEmpty())
	})

	t.Run("edge/whitespacePatternDrainsAll", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("a", "b")
		// act
		got := c.Consume(" \t ")
		// assert
		require.NotNil(t, got)
		assert.Equal(t, 2, got.Len())
		assert.True(t, c.IsEmpty())
	})

	t.Run("edge/patternLongerThanRecords", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("da", "d")
		// act
		got := c.Consume("data")
		// assert
		assert.Nil(t, got)
		assert.Equal(t, 2, c.Len())
	})

	t.Run("edge/whitespaceOnlyRecordMatchesOnlyEmpty", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("   ", "x")
		// act
		got := c.Consume("x ")
		// assert
		require.NotNil(t, got)
		assert.Equal(t, []string{"x"}, got.Inner())
		assert.Nil(t, c.Consume("a"))
		assert.Equal(t, []string{"   "}, c.Inner())
	})

	t.Run("edge/emptyCollection", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := consumable.NewCollection(nil)
		// act & assert
		assert.Nil(t, c.Consume(""))
		assert.Nil(t, c.Consume("a"))
	})

	t.Run("edge/batchIsDetached", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("a1", "b", "a2")
		got := c.Consume("a")
		require.NotNil(t, got)
		// act
		got.Add("a3")
		c.Add("a4")
		// assert
		assert.Equal(t, []string{"a1", "a2", "a3"}, got.Inner())
		assert.Equal(t, []string{"b", "a4"}, c.Inner())
	})

	t.Run("ok/invariantNoMatchLeft", func(t *testing.T) {
		t.Parallel()
		// arrange
		items := []string{"ab", " ab", "ba", "a", "abc ", "", " ", "b a", "\tabx"}
		for _, pattern := range []string{"a", "ab", " ab ", "b", "", "zzz"} {
			c := consumable.NewCollection(items)
			// act
			got := c.Consume(pattern)
			// assert
			trimmed := strings.TrimSpace(pattern)
			var want, rest []string
			for _, item := range items {
				if strings.HasPrefix(strings.TrimSpace(item), trimmed) {
					want = append(want, item)
				} else {
					rest = append(rest, item)
				}
			}
			if want == nil {
				assert.Nil(t, got, pattern)
				assert.Equal(t, items, c.Inner(), pattern)
				continue
			}
			require.NotNil(t, got, pattern)
			assert.Equal(t, want, got.Inner(), pattern)
			assert.Equal(t, len(rest), c.Len(), pattern)
			assert.Equal(t, rest, slices.Collect(c.All()), pattern)
		}
	})
}

func Test_Collection_ConsumeFunc(t *testing.T) {
	t.Parallel()

	t.Run("ok/predicate", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("1", "22", "333", "4444")
		// act
		got := c.ConsumeFunc(func(item string) bool { return len(item)%2 == 0 })
		// assert
		require.NotNil(t, got)
		assert.Equal(t, []string{"22", "4444"}, got.Inner())
		assert.Equal(t, []string{"1", "333"}, c.Inner())
	})

	t.Run("ok/predicateCalledOncePerRecord", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("a", "b", "c")
		calls := 0
		// act
		_ = c.ConsumeFunc(func(item string) bool {
			calls++
			return item == "b"
		})
		// assert
		assert.Equal(t, 3, calls)
	})
}

func Test_Collection_Clear(t *testing.T) {
	t.Parallel()

	t.Run("ok/basic", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("a", "b")
		// act
		c.Clear()
		// assert
		assert.True(t, c.IsEmpty())
		assert.Empty(t, c.Inner())
		c.Add("c")
		assert.Equal(t, []string{"c"}, c.Inner())
	})
}

func Test_Collection_AsConsumer(t *testing.T) {
	t.Parallel()

	t.Run("ok/neverFails", func(t *testing.T) {
		t.Parallel()
		// arrange
		c := newCollection("data", "ata")
		var cons consumable.Consumer = c.AsConsumer()
		// act
		got, err := cons.Consume("da")
		none, noneErr := cons.Consume("da")
		// assert
		require.NoError(t, err)
		require.NoError(t, noneErr)
		assert.Equal(t, []string{"data"}, got.Inner())
		assert.Nil(t, none)
		assert.Equal(t, []string{"ata"}, c.Inner())
	})
}
