package chat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// ErrInterrupted is returned by a LineReader when the user presses Ctrl-C.
var ErrInterrupted = errors.New("chat interrupted")

// LineReader reads one line of user input after showing prompt.
// It returns io.EOF when input is exhausted and ErrInterrupted on Ctrl-C.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// TerminalReader reads from an interactive terminal with line editing and history.
type TerminalReader struct {
	line        *liner.State
	historyFile string
}

// NewTerminalReader puts the terminal into line-editing mode.
// If historyFile is non-empty, history is loaded from it now and saved on Close.
// The caller must call Close to restore the terminal.
func NewTerminalReader(historyFile string) *TerminalReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	r := &TerminalReader{line: line, historyFile: historyFile}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = line.ReadHistory(f)
			f.Close()
		}
	}
	return r
}

// TerminalSupported reports whether the current terminal supports line editing.
func TerminalSupported() bool {
	return liner.TerminalSupported()
}

// ReadLine implements LineReader.
func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (r *TerminalReader) Close() error {
	if r.historyFile != "" {
		if f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600); err == nil {
			_, _ = r.line.WriteHistory(f)
			f.Close()
		}
	}
	return r.line.Close()
}

// DefaultMaxLineLength is the longest line a StreamReader accepts by default.
const DefaultMaxLineLength = 1 << 20

// ErrLineTooLong is returned by StreamReader for a line over its length limit.
// The rest of the line is discarded; the next call reads the following line.
var ErrLineTooLong = errors.New("input line too long")

// StreamReader reads newline-delimited input from any io.Reader.
// It is used for pipes and tests.
type StreamReader struct {
	reader  *bufio.Reader
	out     io.Writer
	maxLine int
}

// NewStreamReader reads lines from in. Prompts are written to out; a nil out
// discards them. Lines longer than maxLine bytes are rejected with
// ErrLineTooLong; maxLine <= 0 means DefaultMaxLineLength.
func NewStreamReader(in io.Reader, out io.Writer, maxLine int) *StreamReader {
	if out == nil {
		out = io.Discard
	}
	if maxLine <= 0 {
		maxLine = DefaultMaxLineLength
	}
	return &StreamReader{reader: bufio.NewReader(in), out: out, maxLine: maxLine}
}

// ReadLine implements LineReader.
func (r *StreamReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	var (
		line    []byte
		started bool
		tooLong bool
	)
	for {
		chunk, isPrefix, err := r.reader.ReadLine()
		if err != nil {
			// EOF right after a buffer-sized chunk still ends the current line.
			if errors.Is(err, io.EOF) && started {
				break
			}
			return "", err
		}
		started = true
		if !tooLong {
			if len(line)+len(chunk) > r.maxLine {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", fmt.Errorf("%w (limit %d bytes)", ErrLineTooLong, r.maxLine)
	}
	return string(line), nil
}
