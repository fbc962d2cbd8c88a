package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// ErrNotARepository is returned when the target path is not a Git repository.
var ErrNotARepository = errors.New("not a git repository")

// LogSource produces commit records for a repository window.
// This abstraction allows tests to substitute predefined data.
type LogSource interface {
	Collect(ctx context.Context) ([]CommitRecord, error)
}

// LogCollector shells out to the git CLI to produce a raw delimited log blob
// and parses it into commit records.
type LogCollector struct {
	opts CollectOptions
	log  *zap.SugaredLogger
}

// NewLogCollector validates that opts.RepoPath is a Git repository and
// returns a collector for it.
func NewLogCollector(opts CollectOptions, log *zap.SugaredLogger) (*LogCollector, error) {
	if _, err := gogit.PlainOpen(opts.RepoPath); err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s (run shiplog inside a repository or pass --repo)", ErrNotARepository, opts.RepoPath)
		}
		return nil, fmt.Errorf("open repository %s: %w", opts.RepoPath, err)
	}
	return &LogCollector{opts: opts, log: log}, nil
}

// Collect reads the commit window and returns parsed records, newest first.
// When include/exclude filters are configured, commits whose touched files
// all fall outside the filters are dropped.
func (c *LogCollector) Collect(ctx context.Context) ([]CommitRecord, error) {
	blob, err := c.rawLog(ctx)
	if err != nil {
		return nil, err
	}

	records := ParseLog(blob, RecordSeparator, FieldSeparator)
	c.log.Debugw("parsed git log", "records", len(records), "blob_bytes", len(blob))

	if len(c.opts.Include) == 0 && len(c.opts.Exclude) == 0 {
		return records, nil
	}

	touched, err := c.filesTouched(ctx)
	if err != nil {
		return nil, err
	}
	filtered := filterByTouchedFiles(records, touched, c.opts.Include, c.opts.Exclude)
	c.log.Debugw("applied path filters", "kept", len(filtered), "dropped", len(records)-len(filtered))
	return filtered, nil
}

func (c *LogCollector) rawLog(ctx context.Context) (string, error) {
	// One record per commit: hash, author date, author name, subject and body
	// joined by 0x1f, records separated by 0x1e.
	const format = "%h%x1f%aI%x1f%an%x1f%s%x1f%b%x1e"

	out, err := c.runGit(ctx, c.logArgs("--pretty=format:"+format))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// runGit executes git and carries its stderr into the wrapped error, since
// "exit status 128" alone says nothing about what went wrong.
func (c *LogCollector) runGit(ctx context.Context, args []string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, "git", args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}
	return out, nil
}

// filesTouched maps each abbreviated hash in the window to the file paths the
// commit touched. Used only when path filters are configured.
func (c *LogCollector) filesTouched(ctx context.Context) (map[string][]string, error) {
	out, err := c.runGit(ctx, c.logArgs("--name-only", "--pretty=format:%x1e%h"))
	if err != nil {
		return nil, err
	}

	touched := make(map[string][]string)
	for _, chunk := range strings.Split(string(out), RecordSeparator) {
		lines := strings.Split(strings.TrimSpace(chunk), "\n")
		if len(lines) == 0 || lines[0] == "" {
			continue
		}
		hash := strings.TrimSpace(lines[0])
		for _, line := range lines[1:] {
			if path := strings.TrimSpace(line); path != "" {
				touched[hash] = append(touched[hash], path)
			}
		}
	}
	return touched, nil
}

func (c *LogCollector) logArgs(extra ...string) []string {
	args := []string{"-C", c.opts.RepoPath, "log", "--no-color"}
	args = append(args, extra...)

	if c.opts.Since != nil {
		args = append(args, fmt.Sprintf("--since=@%d", c.opts.Since.Unix()))
	}
	if c.opts.Until != nil {
		args = append(args, fmt.Sprintf("--until=@%d", c.opts.Until.Unix()))
	}

	rev := strings.TrimSpace(c.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	return args
}

// Compile-time interface conformance check.
var _ LogSource = (*LogCollector)(nil)
