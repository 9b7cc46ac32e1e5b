// Package keyword provides case-insensitive multi-pattern substring matching
// over record text, backed by an Aho-Corasick automaton so a haystack is
// scanned once regardless of how many keywords are configured.
package keyword

import (
	"sort"
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Matcher reports which of a fixed keyword set occur as substrings of a text.
// Matching is case-insensitive. Each keyword counts at most once per text.
type Matcher struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewMatcher builds a matcher for the provided keywords. Blank keywords are
// ignored; a matcher over an empty set matches nothing.
func NewMatcher(keywords []string) *Matcher {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		normalized = append(normalized, kw)
	}

	m := &Matcher{keywords: normalized}
	if len(normalized) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(normalized)
	}
	return m
}

// Empty reports whether the matcher has no keywords.
func (m *Matcher) Empty() bool {
	return m == nil || len(m.keywords) == 0
}

// Hits returns the keywords present in text, in dictionary order.
func (m *Matcher) Hits(text string) []string {
	indices := m.match(text)
	if len(indices) == 0 {
		return nil
	}
	sort.Ints(indices)
	hits := make([]string, 0, len(indices))
	for _, idx := range indices {
		hits = append(hits, m.keywords[idx])
	}
	return hits
}

// HitCount returns how many distinct keywords occur in text.
func (m *Matcher) HitCount(text string) int {
	return len(m.match(text))
}

// Matches reports whether any keyword occurs in text.
func (m *Matcher) Matches(text string) bool {
	return len(m.match(text)) > 0
}

func (m *Matcher) match(text string) []int {
	if m == nil || m.matcher == nil {
		return nil
	}
	return m.matcher.Match([]byte(strings.ToLower(text)))
}
