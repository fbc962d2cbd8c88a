package digest

// SummaryResult is the validated four-category mapping extracted from the
// summarization reply. One field per category keeps "all four always
// present" a structural invariant rather than a runtime convention.
type SummaryResult struct {
	Features     []string
	Fixes        []string
	Improvements []string
	Other        []string
}

// Items returns the item list for a category. Never nil.
func (r SummaryResult) Items(c Category) []string {
	var items []string
	switch c {
	case CategoryFeatures:
		items = r.Features
	case CategoryFixes:
		items = r.Fixes
	case CategoryImprovements:
		items = r.Improvements
	default:
		items = r.Other
	}
	if items == nil {
		items = []string{}
	}
	return items
}

// Section is one category's items in the final digest.
type Section struct {
	Category Category
	Items    []string
}

// Digest is the categorized result handed to rendering: the covered date
// range plus exactly four sections in fixed order.
type Digest struct {
	Range    DateRange
	Sections []Section
}

// Assemble pairs a date range with a summary result. Pure composition.
func Assemble(r DateRange, sum SummaryResult) Digest {
	cats := Categories()
	sections := make([]Section, 0, len(cats))
	for _, c := range cats {
		sections = append(sections, Section{Category: c, Items: sum.Items(c)})
	}
	return Digest{Range: r, Sections: sections}
}
