package summarize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/kawagoe/shiplog/internal/digest"
)

// ErrUnparseableResponse is returned when the summarization reply cannot be
// reduced to the expected category payload. This indicates the upstream
// contract was violated and must be surfaced, not silently defaulted.
var ErrUnparseableResponse = errors.New("unparseable summarization response")

// ParseResponse extracts the four-category result from the untrusted reply
// text. The service may have wrapped the payload in prose despite
// instructions, so the payload is located as the span from the first '{' to
// the last '}'. Absent or wrong-typed categories default to empty; unknown
// keys are ignored; item order is kept as returned.
func ParseResponse(reply string) (digest.SummaryResult, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end < start {
		return digest.SummaryResult{}, fmt.Errorf("%w: no {...} payload in reply", ErrUnparseableResponse)
	}

	payload := reply[start : end+1]
	if !gjson.Valid(payload) {
		return digest.SummaryResult{}, fmt.Errorf("%w: located payload is not valid JSON", ErrUnparseableResponse)
	}

	root := gjson.Parse(payload)
	if !root.IsObject() {
		return digest.SummaryResult{}, fmt.Errorf("%w: payload is not a mapping", ErrUnparseableResponse)
	}

	return digest.SummaryResult{
		Features:     categoryItems(root, digest.CategoryFeatures),
		Fixes:        categoryItems(root, digest.CategoryFixes),
		Improvements: categoryItems(root, digest.CategoryImprovements),
		Other:        categoryItems(root, digest.CategoryOther),
	}, nil
}

func categoryItems(root gjson.Result, c digest.Category) []string {
	val := root.Get(c.Key())
	if !val.IsArray() {
		return []string{}
	}
	elems := val.Array()
	items := make([]string, 0, len(elems))
	for _, e := range elems {
		items = append(items, e.String())
	}
	return items
}
