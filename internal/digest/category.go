package digest

// Category is one of the four fixed digest buckets. The set is closed;
// rendering order is the declaration order below.
type Category int

const (
	CategoryFeatures Category = iota
	CategoryFixes
	CategoryImprovements
	CategoryOther
)

// Categories returns all categories in rendering order.
func Categories() []Category {
	return []Category{CategoryFeatures, CategoryFixes, CategoryImprovements, CategoryOther}
}

// Key returns the wire key used in the summarization payload.
func (c Category) Key() string {
	switch c {
	case CategoryFeatures:
		return "features"
	case CategoryFixes:
		return "fixes"
	case CategoryImprovements:
		return "improvements"
	default:
		return "other"
	}
}

// Title returns the human-facing section heading.
func (c Category) Title() string {
	switch c {
	case CategoryFeatures:
		return "New Features"
	case CategoryFixes:
		return "Fixes"
	case CategoryImprovements:
		return "Improvements"
	default:
		return "Other Changes"
	}
}

// String returns the wire key.
func (c Category) String() string {
	return c.Key()
}
