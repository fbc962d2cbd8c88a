package output

import "fmt"

// MarkdownDigestWriter writes the digest as a Markdown document.
type MarkdownDigestWriter struct{}

// Write outputs the digest report as Markdown.
func (w *MarkdownDigestWriter) Write(report *DigestReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintf(out, "# Changelog Digest (%s)\n\n", rangeLabel(report.Digest.Range.Start, report.Digest.Range.End))
	fmt.Fprintf(out, "**Repository:** %s\n\n", report.RepoPath)
	fmt.Fprintf(out, "**Audience:** %s\n\n", report.Audience)

	for _, section := range report.Digest.Sections {
		fmt.Fprintf(out, "## %s\n\n", section.Category.Title())
		if len(section.Items) == 0 {
			fmt.Fprintln(out, "_No changes in this period._")
			fmt.Fprintln(out)
			continue
		}
		for _, item := range section.Items {
			fmt.Fprintf(out, "- %s\n", item)
		}
		fmt.Fprintln(out)
	}

	return nil
}
