package summarize

import (
	"fmt"
	"strings"

	"github.com/kawagoe/shiplog/internal/git"
)

// BuildPrompt constructs the single natural-language instruction sent to the
// summarization service: category definitions, audience framing, rules, and
// the full serialized commit window.
func BuildPrompt(records []git.CommitRecord, audience Audience) string {
	var b strings.Builder

	b.WriteString("You are writing a changelog digest from raw git commits.\n")
	b.WriteString(audience.Framing())
	b.WriteString("\n\n")

	b.WriteString("Classify every change into exactly these four categories:\n")
	b.WriteString("- features: new user-facing capability\n")
	b.WriteString("- fixes: resolved defects\n")
	b.WriteString("- improvements: things that work better without being new\n")
	b.WriteString("- other: everything else, including internal and technical changes\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Skip merge commits and pure version-bump commits.\n")
	b.WriteString("- If a commit message is unclear, infer the intent rather than skipping it.\n")
	b.WriteString("- Keep each item to one or two sentences.\n\n")

	fmt.Fprintf(&b, "Commits (%d, newest first):\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(&b, "- %s | %s | %s | %s\n", rec.Hash, rec.Date, rec.Author, rec.Message)
		if rec.HasBody() {
			b.WriteString("  ")
			b.WriteString(strings.ReplaceAll(rec.Body, "\n", "\n  "))
			b.WriteString("\n")
		}
	}

	b.WriteString("\nRespond with a single JSON object and nothing else, mapping the keys ")
	b.WriteString(`"features", "fixes", "improvements" and "other" to arrays of item strings. `)
	b.WriteString("Output nothing outside the object; a category with no items is an empty array.\n")

	return b.String()
}
