package digest

import (
	"testing"
	"time"

	"github.com/kawagoe/shiplog/internal/git"
)

func TestReduceDateRange_EmptyCollapsesToToday(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 45, 0, 0, time.UTC)

	r, err := ReduceDateRange(nil, now)
	if err != nil {
		t.Fatalf("ReduceDateRange: %v", err)
	}
	if r.Start != "2024-06-15" || r.End != "2024-06-15" {
		t.Fatalf("range = %+v, expected start == end == today", r)
	}
}

func TestReduceDateRange_MinMaxRegardlessOfOrder(t *testing.T) {
	records := []git.CommitRecord{
		{Hash: "h1", Date: "2024-01-20T18:00:00+09:00"},
		{Hash: "h2", Date: "2024-01-05T08:00:00+09:00"},
		{Hash: "h3", Date: "2024-01-12T12:00:00+09:00"},
	}

	for _, order := range [][]git.CommitRecord{
		records,
		{records[2], records[0], records[1]},
		{records[1], records[2], records[0]},
	} {
		r, err := ReduceDateRange(order, time.Now())
		if err != nil {
			t.Fatalf("ReduceDateRange: %v", err)
		}
		if r.Start != "2024-01-05" || r.End != "2024-01-20" {
			t.Fatalf("range = %+v, expected 2024-01-05..2024-01-20", r)
		}
	}
}

func TestReduceDateRange_SingleDayWindow(t *testing.T) {
	records := []git.CommitRecord{
		{Hash: "h1", Date: "2024-04-01T09:00:00Z"},
		{Hash: "h2", Date: "2024-04-01T17:30:00Z"},
	}

	r, err := ReduceDateRange(records, time.Now())
	if err != nil {
		t.Fatalf("ReduceDateRange: %v", err)
	}
	if r.Start != "2024-04-01" || r.End != "2024-04-01" {
		t.Fatalf("range = %+v, expected a single-day window", r)
	}
}

func TestReduceDateRange_MalformedDateIsAnError(t *testing.T) {
	records := []git.CommitRecord{
		{Hash: "h1", Date: "2024-04-01T09:00:00Z"},
		{Hash: "h2", Date: "yesterday-ish"},
	}

	if _, err := ReduceDateRange(records, time.Now()); err == nil {
		t.Fatal("expected an error for an unparseable commit date")
	}
}
