package aggregator

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotals_AddGetOrZero(t *testing.T) {
	totals := NewTotals[string]()

	running := totals.Add("apple", decimal.RequireFromString("1.25"))
	assert.Equal(t, "1.25", running.String())

	running = totals.Add("apple", decimal.RequireFromString("0.75"))
	assert.Equal(t, "2", running.String())

	_, ok := totals.Get("pear")
	assert.False(t, ok)
	assert.Equal(t, 1, totals.Len())
}

func TestTotals_MapIsACopy(t *testing.T) {
	totals := NewTotals[string]()
	totals.Add("apple", decimal.NewFromInt(3))

	m := totals.Map()
	m["apple"] = decimal.NewFromInt(100)
	m["pear"] = decimal.NewFromInt(1)

	v, _ := totals.Get("apple")
	assert.Equal(t, "3", v.String())
	assert.Equal(t, 1, totals.Len())
}

func TestTotals_Equal(t *testing.T) {
	a := NewTotals[string]()
	a.Add("apple", decimal.RequireFromString("1.50"))
	a.Add("pear", decimal.RequireFromString("2"))

	b := NewTotals[string]()
	b.Add("pear", decimal.RequireFromString("2.00"))
	b.Add("apple", decimal.RequireFromString("1.5"))

	c := NewTotals[string]()
	c.Add("apple", decimal.RequireFromString("1.50"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, NewTotals[string]().Equal(nil))
}

func TestTotals_SortedByValue(t *testing.T) {
	totals := NewTotals[string]()
	totals.Add("cookie", decimal.NewFromInt(23))
	totals.Add("pear", decimal.NewFromInt(11))
	totals.Add("plum", decimal.NewFromInt(15))
	totals.Add("apple", decimal.NewFromInt(15))

	entries := totals.SortedByValue()
	require.Len(t, entries, 4)

	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"pear", "plum", "apple", "cookie"}, keys)

	// sorting returns a new slice
	assert.Equal(t, []string{"cookie", "pear", "plum", "apple"}, totals.Keys())
}

func TestSortedByDay(t *testing.T) {
	totals := NewTotals[time.Time]()
	totals.Add(day(3), decimal.NewFromInt(1))
	totals.Add(day(1), decimal.NewFromInt(2))
	totals.Add(day(2), decimal.NewFromInt(3))

	entries := SortedByDay(totals)
	require.Len(t, entries, 3)
	assert.Equal(t, day(1), entries[0].Key)
	assert.Equal(t, day(2), entries[1].Key)
	assert.Equal(t, day(3), entries[2].Key)
}

func TestTotals_NilReceiver(t *testing.T) {
	var totals *Totals[string]

	assert.Equal(t, 0, totals.Len())
	assert.Nil(t, totals.Keys())
	assert.Nil(t, totals.Entries())
	assert.True(t, totals.Sum().IsZero())
	assert.Empty(t, totals.Map())
	_, ok := totals.Get("x")
	assert.False(t, ok)
}
