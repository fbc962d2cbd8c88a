package git

import "strings"

// ParseLog converts a raw delimited git log blob into an ordered sequence of
// commit records. The blob is split on recordSep; chunks that are empty or
// whitespace-only (the usual trailing-separator artifact) are dropped. Each
// remaining chunk is split on fieldSep into hash, date, author and message;
// any further parts are commit-body text and are rejoined with fieldSep as
// the glue, since a body may legally contain the separator as ordinary text.
// Chunks with fewer than four fields are dropped silently.
func ParseLog(blob, recordSep, fieldSep string) []CommitRecord {
	chunks := strings.Split(blob, recordSep)
	records := make([]CommitRecord, 0, len(chunks))

	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}

		parts := strings.Split(chunk, fieldSep)
		if len(parts) < 4 {
			continue
		}

		rec := CommitRecord{
			Hash:    strings.TrimSpace(parts[0]),
			Date:    strings.TrimSpace(parts[1]),
			Author:  strings.TrimSpace(parts[2]),
			Message: strings.TrimSpace(parts[3]),
		}
		if len(parts) > 4 {
			rec.Body = strings.TrimSpace(strings.Join(parts[4:], fieldSep))
		}

		records = append(records, rec)
	}

	return records
}
