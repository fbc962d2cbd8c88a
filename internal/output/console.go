package output

import (
	"fmt"

	"github.com/fatih/color"
)

// ConsoleDigestWriter writes the digest with colored section headings.
type ConsoleDigestWriter struct{}

// Write outputs the digest report to the console, or to OutputPath when set.
func (w *ConsoleDigestWriter) Write(report *DigestReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	heading := color.New(color.FgGreen)
	sectionHeading := color.New(color.FgCyan)

	heading.Fprintln(out, "Changelog Digest")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Period: %s\n", rangeLabel(report.Digest.Range.Start, report.Digest.Range.End))
	fmt.Fprintf(out, "Audience: %s\n\n", report.Audience)

	for _, section := range report.Digest.Sections {
		sectionHeading.Fprintln(out, section.Category.Title())
		if len(section.Items) == 0 {
			fmt.Fprintln(out, "  (no changes)")
		}
		for _, item := range section.Items {
			fmt.Fprintf(out, "  - %s\n", item)
		}
		fmt.Fprintln(out)
	}

	return nil
}
