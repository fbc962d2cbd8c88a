package git

import "time"

// Separator tokens used in the git log pretty format. Control characters
// do not occur in ordinary commit metadata, which keeps record and field
// boundaries unambiguous for typical input.
const (
	RecordSeparator = "\x1e"
	FieldSeparator  = "\x1f"
)

// CommitRecord is one parsed entry from the delimited git log stream.
// Records are immutable once parsed.
type CommitRecord struct {
	Hash    string // abbreviated commit hash
	Date    string // ISO-8601 author date, as printed by git %aI
	Author  string // author display name
	Message string // subject line
	Body    string // free-form body; empty when the commit has none
}

// HasBody reports whether the commit carried body text beyond the subject.
func (r CommitRecord) HasBody() bool {
	return r.Body != ""
}

// CollectOptions configures the log collector.
type CollectOptions struct {
	RepoPath string
	Branch   string
	Since    *time.Time
	Until    *time.Time
	Include  []string // Glob patterns over touched file paths
	Exclude  []string // Glob patterns over touched file paths
}
