package output

import (
	"time"

	"github.com/kawagoe/shiplog/internal/digest"
)

// Compile-time interface conformance checks.
var (
	_ DigestWriter = (*ConsoleDigestWriter)(nil)
	_ DigestWriter = (*MarkdownDigestWriter)(nil)
	_ DigestWriter = (*HTMLDigestWriter)(nil)
	_ DigestWriter = (*JSONDigestWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatMarkdown OutputFormat = "markdown"
	FormatHTML     OutputFormat = "html"
	FormatJSON     OutputFormat = "json"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string
}

// DigestReport bundles a digest with run metadata for rendering.
type DigestReport struct {
	RepoPath    string
	Audience    string
	GeneratedAt time.Time
	Digest      digest.Digest
}

// DigestWriter renders a digest report to a document.
type DigestWriter interface {
	Write(report *DigestReport, options OutputOptions) error
}

// NewDigestWriter creates a writer for the specified format.
func NewDigestWriter(format OutputFormat) DigestWriter {
	switch format {
	case FormatMarkdown:
		return &MarkdownDigestWriter{}
	case FormatHTML:
		return &HTMLDigestWriter{}
	case FormatJSON:
		return &JSONDigestWriter{}
	default:
		return &ConsoleDigestWriter{}
	}
}
