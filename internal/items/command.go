package items

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const (
	defaultCommandTimeout = 30 * time.Second
	defaultShell          = "sh"
	// pipeWaitDelay bounds how long a killed command's children may hold
	// its output pipe open.
	pipeWaitDelay = 500 * time.Millisecond
)

// Command runs a shell command and turns its standard output into items.
type Command struct {
	Timeout time.Duration
	Shell   string
}

type CommandOption func(*Command)

func WithTimeout(d time.Duration) CommandOption {
	return func(c *Command) {
		c.Timeout = d
	}
}

func WithShell(path string) CommandOption {
	return func(c *Command) {
		c.Shell = strings.TrimSpace(path)
	}
}

func NewCommand(opts ...CommandOption) *Command {
	c := &Command{
		Timeout: defaultCommandTimeout,
		Shell:   defaultShell,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.Shell == "" {
		c.Shell = defaultShell
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultCommandTimeout
	}
	return c
}

// Lines runs script with "<shell> -c" and returns its output lines as read
// by ReadLines. A non-zero exit is an error carrying the command's stderr.
func (c *Command) Lines(ctx context.Context, script string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Shell, "-c", script) //#nosec G204 -- the user's own command line
	cmd.Stdin = nil
	cmd.WaitDelay = pipeWaitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%s: %s: %w", script, msg, err)
		}
		return nil, fmt.Errorf("%s: %w", script, err)
	}
	return ReadLines(bytes.NewReader(output))
}
