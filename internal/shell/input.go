package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/peterh/liner"
)

// ErrInterrupted is returned by a LineReader when the user aborts the prompt
// with Ctrl-C or the session context is canceled
var ErrInterrupted = errors.New("interrupted")

// LineReader shows a prompt and reads one line of input. It returns io.EOF
// at end of input and ErrInterrupted when the prompt is aborted.
type LineReader interface {
	Prompt(prompt string) (string, error)
}

// historyAppender is implemented by line readers that keep a recall history
type historyAppender interface {
	AppendHistory(item string)
}

// Terminal is a LineReader with line editing and history recall, for
// interactive terminals
type Terminal struct {
	state *liner.State
}

// NewTerminal puts the terminal into raw mode. Close restores it.
func NewTerminal() *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	return &Terminal{state: state}
}

// Prompt reads a line, mapping Ctrl-C to ErrInterrupted
func (t *Terminal) Prompt(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	return line, err
}

// AppendHistory adds a line to the recall history
func (t *Terminal) AppendHistory(item string) {
	t.state.AppendHistory(item)
}

// Close restores the terminal mode
func (t *Terminal) Close() error {
	return t.state.Close()
}

// Reader is a LineReader over any input stream, used for piped input.
// Cancellation of its context aborts a pending Prompt.
type Reader struct {
	ctx  context.Context
	in   io.Reader
	out  io.Writer
	once sync.Once

	lines chan string
	err   error
}

// NewReader creates a Reader printing prompts to out
func NewReader(ctx context.Context, in io.Reader, out io.Writer) *Reader {
	return &Reader{ctx: ctx, in: in, out: out, lines: make(chan string)}
}

// Prompt prints prompt and waits for the next line
func (r *Reader) Prompt(prompt string) (string, error) {
	r.once.Do(r.start)
	fmt.Fprint(r.out, prompt)

	select {
	case <-r.ctx.Done():
		return "", ErrInterrupted
	case line, ok := <-r.lines:
		if !ok {
			if r.err != nil {
				return "", r.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// start scans input in the background so a blocked read does not delay
// cancellation. err is written before lines is closed.
func (r *Reader) start() {
	go func() {
		defer close(r.lines)
		scanner := bufio.NewScanner(r.in)
		for scanner.Scan() {
			select {
			case r.lines <- scanner.Text():
			case <-r.ctx.Done():
				return
			}
		}
		r.err = scanner.Err()
	}()
}
