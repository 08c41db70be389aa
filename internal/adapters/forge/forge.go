// Package forge wraps the Foundry forge binary.
package forge

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/creack/pty"
)

// ForgeAdapter runs forge in the project directory
type ForgeAdapter struct {
	log         *slog.Logger
	projectRoot string
	debug       bool
}

// NewForgeAdapter creates a new forge executor
func NewForgeAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *ForgeAdapter {
	return &ForgeAdapter{
		log:         log.With("component", "ForgeAdapter"),
		projectRoot: cfg.ProjectRoot,
		debug:       cfg.Debug,
	}
}

// Build runs forge build. Output is only shown when the build fails.
func (f *ForgeAdapter) Build(ctx context.Context) error {
	start := time.Now()
	f.log.Debug("running forge build", "dir", f.projectRoot)

	cmd := exec.CommandContext(ctx, "forge", "build")
	cmd.Dir = f.projectRoot

	output, err := cmd.CombinedOutput()
	duration := time.Since(start)
	if err != nil {
		f.log.Error("forge build failed", "error", err, "duration", duration)
		return fmt.Errorf("forge build failed: %w\nOutput: %s", err, string(output))
	}

	f.log.Debug("forge build completed successfully", "duration", duration)
	return nil
}

// Run executes forge with args under a pty so forge keeps its terminal
// output, and returns everything it printed. In debug mode the output is
// also copied to stdout.
func (f *ForgeAdapter) Run(ctx context.Context, args ...string) ([]byte, error) {
	f.log.Debug("running forge", "args", args)

	cmd := exec.CommandContext(ctx, "forge", args...)
	cmd.Dir = f.projectRoot
	cmd.Env = os.Environ()

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to start pty: %w", err)
	}
	defer func() { _ = ptyFile.Close() }()

	var output bytes.Buffer
	var w io.Writer = &output
	if f.debug {
		w = io.MultiWriter(&output, os.Stdout)
	}
	// Reading a pty returns EIO once the child exits.
	_, _ = io.Copy(w, ptyFile)

	if err := cmd.Wait(); err != nil {
		return output.Bytes(), fmt.Errorf("forge %s failed: %w", args[0], err)
	}
	return output.Bytes(), nil
}

var _ usecase.ArtifactBuilder = (*ForgeAdapter)(nil)
