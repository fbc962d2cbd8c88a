package cmd

import (
	"context"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/kawagoe/shiplog/internal/digest"
	"github.com/kawagoe/shiplog/internal/output"
	"github.com/kawagoe/shiplog/internal/summarize"
)

// DigestCmd returns the digest command.
func DigestCmd() *cli.Command {
	return &cli.Command{
		Name:    "digest",
		Aliases: []string{"d"},
		Usage:   "Summarize the commit window into a categorized changelog digest",
		Flags:   commonFlags(),
		Action:  digestAction,
	}
}

func digestAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	return runDigest(c.Context, cc, OutputOptions(c))
}

// runDigest executes one full pipeline run: collect, summarize, assemble,
// render. Shared with the schedule command.
func runDigest(ctx context.Context, cc *CommandContext, opts output.OutputOptions) error {
	// A missing credential is reported before any git work happens.
	if err := cc.Config.ValidateService(); err != nil {
		return err
	}

	records, err := cc.CollectRecords(ctx)
	if err != nil {
		return err
	}

	dateRange, err := digest.ReduceDateRange(records, time.Now())
	if err != nil {
		return err
	}

	client := summarize.NewAnthropicClient(cc.Config.Service.APIKey, cc.Config.Service.Model, cc.Config.Service.MaxTokens)
	service := summarize.NewService(client, cc.Log)

	summary, err := service.Summarize(ctx, records, cc.Audience)
	if err != nil {
		return err
	}

	report := &output.DigestReport{
		RepoPath:    cc.RepoPath,
		Audience:    string(cc.Audience),
		GeneratedAt: time.Now(),
		Digest:      digest.Assemble(dateRange, summary),
	}

	writer := output.NewDigestWriter(opts.Format)
	return writer.Write(report, opts)
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
	}
}
