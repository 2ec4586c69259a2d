// Package chat runs the interactive read-respond-print loop.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spetersoncode/sentibot/router"
)

// Prompt is shown before each line of user input.
const Prompt = "You: "

// ExitWords end the conversation when entered on their own, in any case.
var ExitWords = []string{"quit", "exit", "bye", "goodbye"}

// Responder answers a single user message.
type Responder interface {
	Respond(ctx context.Context, text string) (*router.Reply, error)
}

// Loop runs a conversation between a LineReader and a Responder.
type Loop struct {
	responder   Responder
	reader      LineReader
	out         io.Writer
	turnTimeout time.Duration
	logger      *slog.Logger
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithTurnTimeout bounds each Respond call. Zero means no timeout.
func WithTurnTimeout(d time.Duration) LoopOption {
	return func(l *Loop) {
		l.turnTimeout = d
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) LoopOption {
	return func(l *Loop) {
		l.logger = logger
	}
}

// NewLoop creates a loop that reads from reader and writes replies to out.
func NewLoop(responder Responder, reader LineReader, out io.Writer, opts ...LoopOption) *Loop {
	l := &Loop{
		responder: responder,
		reader:    reader,
		out:       out,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	return l
}

// Run prints the banner and converses until an exit word, end of input,
// Ctrl-C, or cancellation of ctx. Only read failures other than those are
// returned as errors.
func (l *Loop) Run(ctx context.Context) error {
	l.banner()

	for {
		input, err := l.read(ctx)
		switch {
		case errors.Is(err, ErrInterrupted):
			fmt.Fprint(l.out, "\n\nChat interrupted. Goodbye!\n\n")
			return nil
		case errors.Is(err, io.EOF):
			fmt.Fprintln(l.out)
			return nil
		case errors.Is(err, ErrLineTooLong):
			fmt.Fprintf(l.out, "\nError: %v\n\n", err)
			continue
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		text := strings.TrimSpace(input)
		if isExitWord(text) {
			fmt.Fprint(l.out, "\nGoodbye! Take care!\n\n")
			return nil
		}
		if text == "" {
			continue
		}

		reply, err := l.respond(ctx, input)
		if err != nil {
			if ctx.Err() != nil {
				fmt.Fprint(l.out, "\n\nChat interrupted. Goodbye!\n\n")
				return nil
			}
			fmt.Fprintf(l.out, "\nError: %v\n\n", err)
			continue
		}

		l.logger.Debug("turn complete",
			"turn", reply.ID,
			"route", reply.Route,
			"input_tokens", reply.Usage.InputTokens,
			"output_tokens", reply.Usage.OutputTokens,
			"cost_usd", reply.CostUSD,
		)
		fmt.Fprintf(l.out, "\nKnight Bot: %s\n\n", reply.Text)
	}
}

func (l *Loop) banner() {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(l.out, "\n%s\n", rule)
	fmt.Fprintln(l.out, "    Sentiment-Aware Chatbot")
	fmt.Fprintln(l.out, rule)
	fmt.Fprintln(l.out, "Type your message and press Enter.")
	fmt.Fprintln(l.out, "Type 'quit', 'exit', or 'bye' to end the chat.")
	fmt.Fprintf(l.out, "%s\n\n", rule)
}

// read waits for a line or for ctx to be cancelled, whichever comes first.
// On cancellation the goroutine blocked in ReadLine is abandoned and may still
// hold the reader; callers must not reuse the reader and are expected to exit
// the process once Run returns.
func (l *Loop) read(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}

	type result struct {
		line string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		line, err := l.reader.ReadLine(Prompt)
		ch <- result{line, err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case r := <-ch:
		return r.line, r.err
	}
}

func (l *Loop) respond(ctx context.Context, text string) (*router.Reply, error) {
	if l.turnTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.turnTimeout)
		defer cancel()
	}
	return l.responder.Respond(ctx, text)
}

func isExitWord(text string) bool {
	for _, w := range ExitWords {
		if strings.EqualFold(text, w) {
			return true
		}
	}
	return false
}
