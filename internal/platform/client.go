// Package platform invokes the Seqera Platform CLI (`tw`) on behalf of the
// extraction pipeline.
package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultBinary is the executable resolved from PATH when no explicit path
// is configured.
const DefaultBinary = "tw"

// Client produces workflow run archives.
type Client interface {
	// DumpRun downloads the gzip-compressed tar dump for one workflow run
	// into destPath, overwriting any existing file.
	DumpRun(ctx context.Context, workspace, workflowID, destPath string) error
}

// Options configure the CLI client.
type Options struct {
	// Binary is the executable to invoke. Defaults to "tw".
	Binary string
	// Env is the environment passed to the executable. Defaults to the
	// process environment, which is how TOWER_ACCESS_TOKEN reaches tw.
	Env []string
	// Log receives debug detail about invocations. Defaults to a no-op.
	Log *zap.Logger
	// TailLines caps how many stderr lines are kept in error messages.
	TailLines int
}

// CLI shells out to the platform's command-line client. Authentication is
// the client's own concern; this process passes its environment through
// untouched.
type CLI struct {
	opts Options
}

// NewCLI creates a CLI client with the supplied options.
func NewCLI(opts Options) *CLI {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Env == nil {
		opts.Env = os.Environ()
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	if opts.TailLines <= 0 {
		opts.TailLines = 20
	}
	return &CLI{opts: opts}
}

// DumpRun invokes `tw runs dump` for workflowID inside workspace, writing
// the archive to destPath.
func (c *CLI) DumpRun(ctx context.Context, workspace, workflowID, destPath string) error {
	args := dumpArgs(workspace, workflowID, destPath)
	c.opts.Log.Debug("invoking platform client",
		zap.String("binary", c.opts.Binary),
		zap.Strings("args", args),
	)

	cmd := exec.CommandContext(ctx, c.opts.Binary, args...)
	cmd.Env = c.opts.Env

	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if err := cmd.Run(); err != nil {
		if Missing(err) {
			return fmt.Errorf("%s not found on PATH; install the Seqera Platform CLI or set tw_path: %w", c.opts.Binary, err)
		}
		detail := tailLines(stderrBuf.String(), c.opts.TailLines)
		if detail == "" {
			return fmt.Errorf("%s runs dump for workflow %q: %w", c.opts.Binary, workflowID, err)
		}
		return fmt.Errorf("%s runs dump for workflow %q: %w: %s", c.opts.Binary, workflowID, err, detail)
	}

	if out := strings.TrimSpace(stdoutBuf.String()); out != "" {
		c.opts.Log.Debug("platform client output", zap.String("stdout", out))
	}
	return nil
}

// dumpArgs builds the argument list for `runs dump`. The order is part of
// the documented invocation; stubs in tests match on it.
func dumpArgs(workspace, workflowID, destPath string) []string {
	return []string{"runs", "dump", "-id", workflowID, "-o", destPath, "-w", workspace}
}

// Missing reports whether executing the command returned a not-found error.
func Missing(cmdErr error) bool {
	return errors.Is(cmdErr, exec.ErrNotFound)
}

func tailLines(input string, maxLines int) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) <= maxLines {
		return strings.Join(lines, "\n")
	}
	return strings.Join(lines[len(lines)-maxLines:], "\n")
}
