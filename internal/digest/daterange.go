package digest

import (
	"fmt"
	"time"

	"github.com/kawagoe/shiplog/internal/git"
)

const dateLayout = "2006-01-02"

// DateRange is the inclusive calendar span covering a set of commits.
// Both endpoints are YYYY-MM-DD, start <= end.
type DateRange struct {
	Start string
	End   string
}

// ReduceDateRange derives the calendar span covering the records. An empty
// set collapses to now's calendar date (nothing happened today). A record
// date that fails to parse is an error: silently producing an invalid range
// would corrupt the digest header without any signal.
func ReduceDateRange(records []git.CommitRecord, now time.Time) (DateRange, error) {
	if len(records) == 0 {
		day := now.Format(dateLayout)
		return DateRange{Start: day, End: day}, nil
	}

	var earliest, latest time.Time
	for i, rec := range records {
		ts, err := time.Parse(time.RFC3339, rec.Date)
		if err != nil {
			return DateRange{}, fmt.Errorf("commit %s has unparseable date %q: %w", rec.Hash, rec.Date, err)
		}
		if i == 0 || ts.Before(earliest) {
			earliest = ts
		}
		if i == 0 || ts.After(latest) {
			latest = ts
		}
	}

	return DateRange{
		Start: earliest.Format(dateLayout),
		End:   latest.Format(dateLayout),
	}, nil
}
