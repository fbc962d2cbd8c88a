package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kawagoe/shiplog/config"
	"github.com/kawagoe/shiplog/internal/git"
	"github.com/kawagoe/shiplog/internal/summarize"
)

// sourceFactory builds the log source for one collection run. Tests swap it
// to avoid needing a real repository.
type sourceFactory func(opts git.CollectOptions, log *zap.SugaredLogger) (git.LogSource, error)

func defaultSourceFactory(opts git.CollectOptions, log *zap.SugaredLogger) (git.LogSource, error) {
	return git.NewLogCollector(opts, log)
}

// CommandContext holds common state for command execution: parsed flags,
// loaded configuration, and the run logger. Collection is a separate step so
// commands can validate configuration before any work starts, and so
// long-running modes can collect repeatedly.
type CommandContext struct {
	Config   *config.Config
	Log      *zap.SugaredLogger
	RepoPath string
	Branch   string
	Since    *time.Time // explicit --since only; nil means the rolling window
	Until    *time.Time
	Audience summarize.Audience

	newSource sourceFactory
}

// NewCommandContext creates a context from CLI flags.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	since, err := parseDateFlag(c.String("since"))
	if err != nil {
		return nil, fmt.Errorf("invalid since date: %w", err)
	}
	until, err := parseDateFlag(c.String("until"))
	if err != nil {
		return nil, fmt.Errorf("invalid until date: %w", err)
	}

	return &CommandContext{
		Config:    cfg,
		Log:       newLogger(c.Bool("verbose")),
		RepoPath:  c.String("repo"),
		Branch:    c.String("branch"),
		Since:     since,
		Until:     until,
		Audience:  summarize.ParseAudience(cfg.Audience),
		newSource: defaultSourceFactory,
	}, nil
}

// windowSince returns the window start for a run beginning at now: the
// explicit --since when given, otherwise the configured number of days back
// from now. Recomputed per run so scheduled digests cover a rolling window,
// not one anchored at process start.
func (cc *CommandContext) windowSince(now time.Time) *time.Time {
	if cc.Since != nil {
		return cc.Since
	}
	if cc.Config.Window.Days > 0 {
		start := now.AddDate(0, 0, -cc.Config.Window.Days)
		return &start
	}
	return nil
}

// CollectRecords opens the repository and reads the commit window.
func (cc *CommandContext) CollectRecords(ctx context.Context) ([]git.CommitRecord, error) {
	source, err := cc.newSource(git.CollectOptions{
		RepoPath: cc.RepoPath,
		Branch:   cc.Branch,
		Since:    cc.windowSince(time.Now()),
		Until:    cc.Until,
		Include:  cc.Config.Filters.Include,
		Exclude:  cc.Config.Filters.Exclude,
	}, cc.Log)
	if err != nil {
		return nil, err
	}

	records, err := source.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return records, nil
}
