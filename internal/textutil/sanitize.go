package textutil

import "strings"

// CanonicalKey lowercases a free-form name into a snake_case key. Runs of
// characters other than letters, digits, hyphens, and underscores collapse
// into a single underscore. Returns "unknown" when nothing survives.
func CanonicalKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	key := strings.Trim(b.String(), "_-")
	if key == "" {
		return "unknown"
	}
	return key
}
