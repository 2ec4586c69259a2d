package chat

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/spetersoncode/sentibot/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoResponder struct {
	inputs []string
	errs   map[string]error
}

func (e *echoResponder) Respond(_ context.Context, text string) (*router.Reply, error) {
	e.inputs = append(e.inputs, text)
	if err := e.errs[text]; err != nil {
		return nil, err
	}
	return &router.Reply{ID: "turn-test", Text: "echo " + text, Route: router.RouteNeutral}, nil
}

// scriptedReader returns lines in order, then err.
type scriptedReader struct {
	lines []string
	err   error
}

func (s *scriptedReader) ReadLine(string) (string, error) {
	if len(s.lines) == 0 {
		return "", s.err
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func runLoop(t *testing.T, responder Responder, reader LineReader, opts ...LoopOption) string {
	t.Helper()
	var out bytes.Buffer
	opts = append([]LoopOption{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	err := NewLoop(responder, reader, &out, opts...).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestLoopBannerAndReply(t *testing.T) {
	responder := &echoResponder{}
	out := runLoop(t, responder, NewStreamReader(strings.NewReader("hello there\nquit\n"), nil, 0))

	assert.Contains(t, out, "    Sentiment-Aware Chatbot")
	assert.Contains(t, out, "Type 'quit', 'exit', or 'bye' to end the chat.")
	assert.Contains(t, out, "\nKnight Bot: echo hello there\n\n")
	assert.True(t, strings.HasSuffix(out, "\nGoodbye! Take care!\n\n"))
	assert.Equal(t, []string{"hello there"}, responder.inputs)
}

func TestLoopExitWords(t *testing.T) {
	for _, word := range []string{"quit", "EXIT", "  Bye  ", "goodbye"} {
		t.Run(word, func(t *testing.T) {
			responder := &echoResponder{}
			out := runLoop(t, responder, &scriptedReader{lines: []string{word, "never read"}, err: io.EOF})

			assert.Contains(t, out, "Goodbye! Take care!")
			assert.Empty(t, responder.inputs)
		})
	}
}

func TestLoopExitWordMustStandAlone(t *testing.T) {
	responder := &echoResponder{}
	runLoop(t, responder, &scriptedReader{lines: []string{"bye for now"}, err: io.EOF})

	assert.Equal(t, []string{"bye for now"}, responder.inputs)
}

func TestLoopSkipsBlankLines(t *testing.T) {
	responder := &echoResponder{}
	runLoop(t, responder, &scriptedReader{lines: []string{"", "   ", "\t", "hi"}, err: io.EOF})

	assert.Equal(t, []string{"hi"}, responder.inputs)
}

func TestLoopErrorContinues(t *testing.T) {
	responder := &echoResponder{errs: map[string]error{"boom": errors.New("provider unavailable")}}
	out := runLoop(t, responder, &scriptedReader{lines: []string{"boom", "after"}, err: io.EOF})

	assert.Contains(t, out, "\nError: provider unavailable\n\n")
	assert.Contains(t, out, "Knight Bot: echo after")
	assert.Equal(t, []string{"boom", "after"}, responder.inputs)
}

func TestLoopInterrupted(t *testing.T) {
	responder := &echoResponder{}
	out := runLoop(t, responder, &scriptedReader{lines: []string{"hi"}, err: ErrInterrupted})

	assert.True(t, strings.HasSuffix(out, "\n\nChat interrupted. Goodbye!\n\n"))
	assert.Equal(t, []string{"hi"}, responder.inputs)
}

func TestLoopReadError(t *testing.T) {
	readErr := errors.New("device gone")
	var out bytes.Buffer
	err := NewLoop(&echoResponder{}, &scriptedReader{err: readErr}, &out).Run(context.Background())

	assert.ErrorIs(t, err, readErr)
}

type blockingReader struct{}

func (blockingReader) ReadLine(string) (string, error) {
	select {}
}

func TestLoopCancelledWhileReading(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out bytes.Buffer

	done := make(chan error, 1)
	go func() {
		done <- NewLoop(&echoResponder{}, blockingReader{}, &out).Run(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Chat interrupted. Goodbye!")
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancellation")
	}
}

type deadlineResponder struct {
	deadline time.Time
	ok       bool
}

func (d *deadlineResponder) Respond(ctx context.Context, text string) (*router.Reply, error) {
	d.deadline, d.ok = ctx.Deadline()
	return &router.Reply{Text: text}, nil
}

func TestLoopTurnTimeout(t *testing.T) {
	responder := &deadlineResponder{}
	runLoop(t, responder, &scriptedReader{lines: []string{"hi"}, err: io.EOF}, WithTurnTimeout(time.Minute))

	require.True(t, responder.ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), responder.deadline, 5*time.Second)
}

func TestStreamReaderWritesPrompt(t *testing.T) {
	var prompts bytes.Buffer
	r := NewStreamReader(strings.NewReader("one\n"), &prompts, 0)

	line, err := r.ReadLine(Prompt)
	require.NoError(t, err)
	assert.Equal(t, "one", line)
	assert.Equal(t, Prompt, prompts.String())

	_, err = r.ReadLine(Prompt)
	assert.ErrorIs(t, err, io.EOF)
}

func TestStreamReaderLines(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	r := NewStreamReader(strings.NewReader("\r\nfirst\r\n"+long+"\nlast"), nil, 0)

	var lines []string
	for {
		line, err := r.ReadLine(Prompt)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"", "first", long, "last"}, lines)
}

func TestStreamReaderLineTooLong(t *testing.T) {
	r := NewStreamReader(strings.NewReader(strings.Repeat("y", 100)+"\nok\n"), nil, 10)

	_, err := r.ReadLine(Prompt)
	assert.ErrorIs(t, err, ErrLineTooLong)

	line, err := r.ReadLine(Prompt)
	require.NoError(t, err)
	assert.Equal(t, "ok", line)
}

func TestLoopHandlesLongLines(t *testing.T) {
	long := strings.Repeat("a", 70*1024)
	responder := &echoResponder{}
	out := runLoop(t, responder, NewStreamReader(strings.NewReader(long+"\nhello\nquit\n"), nil, 0))

	assert.Equal(t, []string{long, "hello"}, responder.inputs)
	assert.Contains(t, out, "Knight Bot: echo hello")
	assert.Contains(t, out, "Goodbye! Take care!")
}

func TestLoopLineTooLongContinues(t *testing.T) {
	responder := &echoResponder{}
	input := strings.Repeat("b", DefaultMaxLineLength+1) + "\nhello\nquit\n"
	out := runLoop(t, responder, NewStreamReader(strings.NewReader(input), nil, 0))

	assert.Contains(t, out, "\nError: input line too long (limit 1048576 bytes)\n\n")
	assert.Equal(t, []string{"hello"}, responder.inputs)
	assert.Contains(t, out, "Goodbye! Take care!")
}

type costResponder struct{}

func (costResponder) Respond(context.Context, string) (*router.Reply, error) {
	return &router.Reply{ID: "turn-1", Text: "hi", Route: router.RoutePositive, CostUSD: 0.25}, nil
}

func TestLoopLogsTurnCost(t *testing.T) {
	var logs, out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	err := NewLoop(costResponder{}, &scriptedReader{lines: []string{"hello"}, err: io.EOF}, &out, WithLogger(logger)).Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "turn complete")
	assert.Contains(t, logs.String(), "cost_usd=0.25")
	assert.Contains(t, logs.String(), "route=positive")
}
