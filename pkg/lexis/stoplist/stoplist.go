package stoplist

import (
	"sort"
	"strings"
)

// Manager holds a closed set of lowercase stopwords.
//
// A Manager is built once at startup and passed to the analyses that need
// it. Add and Remove exist for configuration time only; they must not be
// called while analyses are running.
type Manager struct {
	stops map[string]struct{}
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]struct{}, len(initialStops))
	for _, s := range initialStops {
		if s = normalize(s); s != "" {
			stops[s] = struct{}{}
		}
	}
	return &Manager{stops: stops}
}

// English returns a manager preloaded with the English stopword list.
func English() *Manager {
	return NewManager(englishStops)
}

// IsStop checks if a token is a stopword. The comparison uses the
// lowercase form of token.
func (m *Manager) IsStop(token string) bool {
	if m == nil {
		return false
	}
	_, ok := m.stops[strings.ToLower(token)]
	return ok
}

// Add adds a token to the stoplist
func (m *Manager) Add(token string) {
	if token = normalize(token); token != "" {
		m.stops[token] = struct{}{}
	}
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	delete(m.stops, normalize(token))
}

// Len returns the number of stopwords.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	return len(m.stops)
}

// All returns all stopwords in lexical order
func (m *Manager) All() []string {
	if m == nil {
		return nil
	}
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
