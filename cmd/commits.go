package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// CommitsCmd returns the commits command, a preview of the parsed commit
// window that does not call the summarization service.
func CommitsCmd() *cli.Command {
	return &cli.Command{
		Name:    "commits",
		Aliases: []string{"l"},
		Usage:   "List the parsed commit records for the window without summarizing",
		Flags:   commonFlags(),
		Action:  commitsAction,
	}
}

func commitsAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	records, err := cc.CollectRecords(c.Context)
	if err != nil {
		return err
	}

	color.Green("Commit Window Preview")
	fmt.Printf("Repository: %s\n", cc.RepoPath)
	fmt.Printf("Commits: %d\n\n", len(records))

	if len(records) == 0 {
		fmt.Println("No commits found in the specified range.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Hash\tDate\tAuthor\tMessage\tBody")
	for _, rec := range records {
		body := ""
		if rec.HasBody() {
			body = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", rec.Hash, rec.Date, rec.Author, rec.Message, body)
	}
	return tw.Flush()
}
