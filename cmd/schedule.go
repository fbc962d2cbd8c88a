package cmd

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v2"
)

// ScheduleCmd returns the schedule command, which runs the digest pipeline
// repeatedly on a cron expression.
func ScheduleCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:  "cron",
			Usage: "Cron expression for digest runs (default from config: 0 8 * * *)",
		},
		&cli.BoolFlag{
			Name:  "run-on-start",
			Usage: "Run one digest immediately before waiting for the schedule",
		},
	)

	return &cli.Command{
		Name:    "schedule",
		Aliases: []string{"s"},
		Usage:   "Run digests on a cron schedule",
		Flags:   flags,
		Action:  scheduleAction,
	}
}

func scheduleAction(c *cli.Context) error {
	cc, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if err := cc.Config.ValidateService(); err != nil {
		return err
	}

	spec := cc.Config.Schedule.Cron
	if s := c.String("cron"); s != "" {
		spec = s
	}
	runOnStart := cc.Config.Schedule.RunOnStart || c.Bool("run-on-start")
	opts := OutputOptions(c)

	runOnce := func() {
		if err := runDigest(context.Background(), cc, opts); err != nil {
			cc.Log.Errorw("digest run failed", "error", err)
		}
	}

	if runOnStart {
		runOnce()
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(spec, runOnce); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}

	cc.Log.Infow("schedule started", "cron", spec)
	scheduler.Run()
	return nil
}
