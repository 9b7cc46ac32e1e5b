package media

// Uncategorized is the reserved label for records matching no category.
const Uncategorized = "uncategorized"

// Category is a named, keyword-driven classification bucket. Lower priority
// values take precedence when hit counts tie.
type Category struct {
	Name     string
	Keywords []string
	Priority int
}
