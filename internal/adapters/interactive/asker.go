// Package interactive implements operator prompts and pickers.
package interactive

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/alicenet/factory-cli/internal/domain"
	"github.com/alicenet/factory-cli/internal/usecase"
	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

// Asker reads answers from the terminal. On a TTY it uses a promptui prompt,
// otherwise it prints the question and reads one line.
type Asker struct {
	in     *bufio.Reader
	out    io.Writer
	isTerm bool

	// One goroutine owns in. A line typed after a cancelled Ask goes to the
	// next Ask.
	start   sync.Once
	lines   chan string
	readErr error
}

// NewAsker creates an asker on stdin
func NewAsker() *Asker {
	return &Asker{
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		isTerm: term.IsTerminal(int(os.Stdin.Fd())),
	}
}

// NewLineAsker reads answers line by line from in.
func NewLineAsker(in io.Reader, out io.Writer) *Asker {
	return &Asker{in: bufio.NewReader(in), out: out}
}

type answer struct {
	text string
	err  error
}

// Ask shows prompt and returns the trimmed answer. A cancelled context
// returns ctx.Err() without waiting for input.
func (a *Asker) Ask(ctx context.Context, prompt string) (string, error) {
	if !a.isTerm {
		return a.askLine(ctx, prompt)
	}

	// promptui cannot be interrupted, so a cancelled prompt keeps its
	// goroutine until the operator answers or the process exits.
	done := make(chan answer, 1)
	go func() {
		text, err := a.prompt(prompt)
		done <- answer{text: strings.TrimSpace(text), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		return res.text, res.err
	}
}

func (a *Asker) prompt(prompt string) (string, error) {
	p := promptui.Prompt{Label: strings.TrimSpace(prompt)}
	text, err := p.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", domain.ErrAborted
	}
	return text, err
}

func (a *Asker) askLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a.start.Do(func() {
		a.lines = make(chan string)
		go a.readLines()
	})

	fmt.Fprint(a.out, prompt)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case text, ok := <-a.lines:
		if !ok {
			return "", a.readErr
		}
		return strings.TrimSpace(text), nil
	}
}

// readLines feeds lines to askLine until the input fails, then closes lines.
func (a *Asker) readLines() {
	defer close(a.lines)
	for {
		text, err := a.in.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && text != "") {
			a.readErr = err
			return
		}
		a.lines <- text
		if err != nil {
			a.readErr = err
			return
		}
	}
}

var _ usecase.Asker = (*Asker)(nil)
