package aggregator

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one key/total pair of a Totals mapping.
type Entry[K comparable] struct {
	Key   K
	Value decimal.Decimal
}

// Totals maps unique keys to exact decimal sums. It remembers the order in
// which keys were first added; values never depend on that order.
type Totals[K comparable] struct {
	order []K
	sums  map[K]decimal.Decimal
}

// NewTotals returns an empty Totals.
func NewTotals[K comparable]() *Totals[K] {
	return &Totals[K]{sums: make(map[K]decimal.Decimal)}
}

// Add accumulates amount under key and returns the new running total.
// An unseen key reads as zero before the addition.
func (t *Totals[K]) Add(key K, amount decimal.Decimal) decimal.Decimal {
	current, seen := t.sums[key]
	if !seen {
		current = decimal.Zero
		t.order = append(t.order, key)
	}
	next := current.Add(amount)
	t.sums[key] = next
	return next
}

// Get returns the total for key and whether key is present.
func (t *Totals[K]) Get(key K) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	v, ok := t.sums[key]
	return v, ok
}

// Len returns the number of keys.
func (t *Totals[K]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.order)
}

// Keys returns the keys in first-seen order.
func (t *Totals[K]) Keys() []K {
	if t == nil {
		return nil
	}
	keys := make([]K, len(t.order))
	copy(keys, t.order)
	return keys
}

// Entries returns all pairs in first-seen order.
func (t *Totals[K]) Entries() []Entry[K] {
	if t == nil {
		return nil
	}
	entries := make([]Entry[K], 0, len(t.order))
	for _, k := range t.order {
		entries = append(entries, Entry[K]{Key: k, Value: t.sums[k]})
	}
	return entries
}

// Sum returns the grand total over all keys.
func (t *Totals[K]) Sum() decimal.Decimal {
	total := decimal.Zero
	if t == nil {
		return total
	}
	for _, k := range t.order {
		total = total.Add(t.sums[k])
	}
	return total
}

// Map returns a copy of the totals as a plain map.
func (t *Totals[K]) Map() map[K]decimal.Decimal {
	out := make(map[K]decimal.Decimal, t.Len())
	if t == nil {
		return out
	}
	for k, v := range t.sums {
		out[k] = v
	}
	return out
}

// Equal reports whether both mappings hold the same keys with numerically
// equal totals. Key order is ignored.
func (t *Totals[K]) Equal(other *Totals[K]) bool {
	if t.Len() != other.Len() {
		return false
	}
	for _, k := range t.Keys() {
		a, _ := t.Get(k)
		b, ok := other.Get(k)
		if !ok || !a.Equal(b) {
			return false
		}
	}
	return true
}

// SortedByValue returns the entries ordered by ascending total. Equal totals
// keep first-seen order.
func (t *Totals[K]) SortedByValue() []Entry[K] {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value.LessThan(entries[j].Value)
	})
	return entries
}

// SortByKey returns the entries of t ordered by less on their keys.
func SortByKey[K comparable](t *Totals[K], less func(a, b K) bool) []Entry[K] {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i].Key, entries[j].Key)
	})
	return entries
}

// SortedByDay returns day totals in chronological order.
func SortedByDay(t *Totals[time.Time]) []Entry[time.Time] {
	return SortByKey(t, func(a, b time.Time) bool { return a.Before(b) })
}
