package qpic

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Engine converts a qpic document on disk into a rendered artifact.
type Engine interface {
	// Available reports whether the engine can run, before any work
	// is attempted.
	Available() error
	// Render converts the document at docPath into the requested
	// format, running in dir so the renderer's intermediate files
	// land next to the output.
	Render(ctx context.Context, docPath string, format Format, dir string) error
}

// CLIEngine invokes the qpic command-line renderer.
type CLIEngine struct {
	// Command overrides the renderer executable. Defaults to "qpic".
	Command string
	// Timeout bounds a single render. Zero means no timeout.
	Timeout time.Duration
}

func (e CLIEngine) command() string {
	if cmd := strings.TrimSpace(e.Command); cmd != "" {
		return cmd
	}
	return "qpic"
}

// Available checks the renderer is on the execution path.
func (e CLIEngine) Available() error {
	if _, err := exec.LookPath(e.command()); err != nil {
		return NewError(KindMissingTool,
			"qpic renderer not found on PATH, install it with: pip install qpic", err)
	}
	return nil
}

// Render runs `qpic <doc> -f <format>` with dir as working directory.
// The renderer writes the artifact itself; its exit code is returned
// as-is without translation.
func (e CLIEngine) Render(ctx context.Context, docPath string, format Format, dir string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cmdCtx := ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		cmdCtx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(cmdCtx, e.command(), docPath, "-f", string(format))
	cmd.Dir = dir
	return cmd.Run()
}
