// Package freq holds word frequency tables and their value ordering.
package freq

import (
	"sort"
	"strings"
)

// Map counts occurrences per lowercase word. Counts only grow.
//
// Keys remember the order in which they were first counted. Lookups do not
// depend on it, but SortByValue does: equal counts keep that order.
type Map struct {
	counts map[string]int
	order  []string
}

// NewMap creates an empty frequency map.
func NewMap() *Map {
	return &Map{counts: make(map[string]int)}
}

// Inc adds one occurrence of word.
func (m *Map) Inc(word string) {
	m.Add(word, 1)
}

// Add adds n occurrences of word. Non-positive n is ignored.
func (m *Map) Add(word string, n int) {
	if n <= 0 {
		return
	}
	key := strings.ToLower(word)
	if _, ok := m.counts[key]; !ok {
		m.order = append(m.order, key)
	}
	m.counts[key] += n
}

// Get returns the count for word.
func (m *Map) Get(word string) int {
	return m.counts[strings.ToLower(word)]
}

// Len returns the number of distinct words.
func (m *Map) Len() int {
	return len(m.order)
}

// Keys returns the words in first-insertion order.
func (m *Map) Keys() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Total returns the sum of all counts.
func (m *Map) Total() int {
	total := 0
	for _, c := range m.counts {
		total += c
	}
	return total
}

// Merge adds every count of other into m, visiting other in its insertion order.
func (m *Map) Merge(other *Map) {
	for _, k := range other.order {
		m.Add(k, other.counts[k])
	}
}

// ToMap returns a plain copy of the counts.
func (m *Map) ToMap() map[string]int {
	out := make(map[string]int, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out
}

// Pair is one word and its count.
type Pair struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// Pairs returns the entries in first-insertion order.
func (m *Map) Pairs() []Pair {
	out := make([]Pair, len(m.order))
	for i, k := range m.order {
		out[i] = Pair{Key: k, Value: m.counts[k]}
	}
	return out
}

// SortByValue orders the entries of m by count.
//
// The ascending order is a stable sort over insertion order, so ties keep
// the order in which the words were first counted. The descending order is
// that ascending sequence reversed, which puts tied words in reverse
// insertion order; it is not an independent descending sort.
func SortByValue(m *Map, ascending bool) []Pair {
	pairs := m.Pairs()
	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Value < pairs[j].Value
	})
	if !ascending {
		for i, j := 0, len(pairs)-1; i < j; i, j = i+1, j-1 {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		}
	}
	return pairs
}

// Top returns the n most frequent entries in descending order. n <= 0
// returns all of them.
func Top(m *Map, n int) []Pair {
	pairs := SortByValue(m, false)
	if n > 0 && len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs
}
