package platform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

var versionRegex = regexp.MustCompile(`(?i)version\s+(\d+\.\d+(?:\.\d+)?)`)

// Version reports the installed platform CLI version by calling
// `tw --version`. It is diagnostic only; callers log failures and move on.
func (c *CLI) Version(ctx context.Context) (string, error) {
	out, err := c.runCommand(ctx, "--version")
	if err != nil {
		return "", err
	}
	return parseVersion(out)
}

func parseVersion(out string) (string, error) {
	match := versionRegex.FindStringSubmatch(out)
	if len(match) < 2 {
		return "", fmt.Errorf("unable to parse tw version from %q", out)
	}
	return match[1], nil
}

func (c *CLI) runCommand(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.opts.Binary, args...)
	cmd.Env = c.opts.Env
	cmd.Stdin = nil
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
