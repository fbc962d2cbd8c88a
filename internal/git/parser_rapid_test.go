package git

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

// genField produces trimmed, non-empty field text free of separators.
func genField() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9][a-zA-Z0-9 ,._:+-]{0,30}[a-zA-Z0-9]`)
}

func genRecord() *rapid.Generator[CommitRecord] {
	return rapid.Custom(func(t *rapid.T) CommitRecord {
		rec := CommitRecord{
			Hash:    genField().Draw(t, "hash"),
			Date:    genField().Draw(t, "date"),
			Author:  genField().Draw(t, "author"),
			Message: genField().Draw(t, "message"),
		}
		if rapid.Bool().Draw(t, "hasBody") {
			lines := rapid.SliceOfN(genField(), 1, 4).Draw(t, "bodyLines")
			rec.Body = strings.Join(lines, "\n")
		}
		return rec
	})
}

// --- Property Tests ---

// Rendering records with the separator tokens and parsing the result must
// reproduce the records exactly, in order.
func TestParseLog_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOfN(genRecord(), 0, 20).Draw(t, "records")

		chunks := make([]string, 0, len(records))
		for _, rec := range records {
			fields := []string{rec.Hash, rec.Date, rec.Author, rec.Message}
			if rec.HasBody() {
				fields = append(fields, rec.Body)
			}
			chunks = append(chunks, strings.Join(fields, FieldSeparator))
		}

		blob := strings.Join(chunks, RecordSeparator)
		if rapid.Bool().Draw(t, "trailingSep") {
			blob += RecordSeparator + "\n"
		}

		parsed := ParseLog(blob, RecordSeparator, FieldSeparator)
		if len(parsed) != len(records) {
			t.Fatalf("parsed %d records, expected %d", len(parsed), len(records))
		}
		for i := range records {
			if parsed[i] != records[i] {
				t.Fatalf("record %d = %#v, expected %#v", i, parsed[i], records[i])
			}
		}
	})
}

// Whatever the input, parsed fields come out trimmed.
func TestParseLog_FieldInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		blob := rapid.String().Draw(t, "blob")

		for _, rec := range ParseLog(blob, RecordSeparator, FieldSeparator) {
			for name, field := range map[string]string{
				"hash": rec.Hash, "date": rec.Date, "author": rec.Author, "message": rec.Message, "body": rec.Body,
			} {
				if field != strings.TrimSpace(field) {
					t.Fatalf("%s = %q is not trimmed", name, field)
				}
			}
		}
	})
}
