// Package progress prints operator-facing progress lines.
package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/alicenet/factory-cli/internal/domain/config"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// Sink shows a spinner while transactions are pending and prints info and
// error lines. Info lines are dropped in silent mode. The spinner only runs
// on a terminal.
type Sink struct {
	mu      sync.Mutex
	spinner *spinner.Spinner
	out     io.Writer
	errOut  io.Writer
	silent  bool
	animate bool
}

// NewSink creates the progress sink for a run
func NewSink(cfg *config.RuntimeConfig) *Sink {
	animate := !cfg.JSON && !cfg.NonInteractive && term.IsTerminal(int(os.Stdout.Fd()))
	return newSink(os.Stdout, os.Stderr, cfg.Silent, animate)
}

func newSink(out, errOut io.Writer, silent, animate bool) *Sink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false
	return &Sink{
		spinner: s,
		out:     out,
		errOut:  errOut,
		silent:  silent,
		animate: animate,
	}
}

// OnProgress starts the spinner for Spinner events and stops it otherwise.
func (p *Sink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !event.Spinner {
		if p.spinner.Active() {
			p.spinner.Stop()
		}
		return
	}
	if p.silent {
		return
	}
	if !p.animate {
		if event.Message != "" {
			fmt.Fprintln(p.out, event.Message)
		}
		return
	}
	p.spinner.Suffix = " " + event.Message
	if !p.spinner.Active() {
		p.spinner.Start()
	}
}

// Info prints message in cyan unless silent.
func (p *Sink) Info(message string) {
	if p.silent {
		return
	}
	p.println(p.out, color.New(color.FgCyan), message)
}

// Error prints message in red.
func (p *Sink) Error(message string) {
	p.println(p.errOut, color.New(color.FgRed), message)
}

func (p *Sink) println(w io.Writer, c *color.Color, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	wasActive := p.spinner.Active()
	if wasActive {
		p.spinner.Stop()
	}
	c.Fprintln(w, message)
	if wasActive {
		p.spinner.Start()
	}
}

var _ usecase.ProgressSink = (*Sink)(nil)
