// Package main runs the sentiment-routing chatbot on the terminal.
//
// Each message is checked for crisis language, classified by sentiment, and
// answered by the model assigned to that sentiment. Crisis language and
// severe distress are answered with fixed mental-health resources instead.
//
// Configuration is via environment variables (a .env file is loaded if present):
//
//	GOOGLE_API_KEY            - Gemini API key
//	GROQ_API_KEY              - Groq API key
//	OPENAI_API_KEY            - OpenAI API key (only if a route uses openai)
//	ANTHROPIC_API_KEY         - Anthropic API key (only if a route uses anthropic)
//	SENTIBOT_CLASSIFIER_MODEL - Classifier model (default: google:gemini-2.5-pro)
//	SENTIBOT_POSITIVE_MODEL   - Enthusiastic route (default: groq:llama-3.3-70b-versatile)
//	SENTIBOT_NEGATIVE_MODEL   - Empathetic route (default: google:gemini-2.5-pro)
//	SENTIBOT_NEUTRAL_MODEL    - Informative route (default: google:gemini-2.5-flash)
//	SENTIBOT_ROUTES_FILE      - YAML file overriding models and temperatures
//	SENTIBOT_RETRY_ATTEMPTS   - Attempts per provider call (default: 3)
//	SENTIBOT_TURN_TIMEOUT     - Per-turn timeout, e.g. 60s (default: none)
//	SENTIBOT_LOG_LEVEL        - debug, info, warn, or error (default: info)
//	SENTIBOT_HISTORY_FILE     - Input history file for interactive sessions
//
// Usage:
//
//	go run ./cmd/sentibot
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/spetersoncode/sentibot/chat"
	"github.com/spetersoncode/sentibot/client"
	"github.com/spetersoncode/sentibot/config"
	"github.com/spetersoncode/sentibot/router"
	"github.com/spetersoncode/sentibot/sentiment"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("chat failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, in *os.File, out io.Writer) error {
	events := make(chan client.Event, 64)
	defer close(events)
	go logEvents(events)

	retryConfig := client.DefaultRetryConfig().WithMaxAttempts(cfg.RetryAttempts)
	c := client.New(client.Config{
		APIKeys:     cfg.APIKeys(),
		RetryConfig: &retryConfig,
		Events:      events,
	})
	if missing := c.MissingKeys(cfg.Models()...); len(missing) > 0 {
		errs := make([]error, len(missing))
		for i, m := range missing {
			errs[i] = m
		}
		return errors.Join(errs...)
	}

	classifier := sentiment.NewClassifier(c, cfg.Classifier.Model,
		sentiment.WithTemperature(cfg.Classifier.Temperature))
	r := router.New(classifier, c, router.WithRoutes(cfg.Routes()))

	slog.Debug("starting chat",
		"classifier", cfg.Classifier.Model.Ref(),
		"positive", cfg.Positive.Model.Ref(),
		"negative", cfg.Negative.Model.Ref(),
		"neutral", cfg.Neutral.Model.Ref(),
	)

	var reader chat.LineReader
	if term.IsTerminal(int(in.Fd())) && chat.TerminalSupported() {
		tr := chat.NewTerminalReader(cfg.HistoryFile)
		// After SIGTERM the loop returns while liner may still be blocked in
		// Prompt. Close restores the terminal mode and main exits right after,
		// so the pending read is never resumed.
		defer tr.Close()
		reader = tr
	} else {
		reader = chat.NewStreamReader(in, out, chat.DefaultMaxLineLength)
	}

	return chat.NewLoop(r, reader, out, chat.WithTurnTimeout(cfg.TurnTimeout)).Run(ctx)
}

// logEvents writes client events to the default logger until events is closed.
func logEvents(events <-chan client.Event) {
	for e := range events {
		switch e.Type {
		case client.EventRetry:
			slog.Debug("retrying request",
				"provider", e.Provider, "model", e.Model,
				"attempt", e.Attempt, "delay", e.Delay, "error", e.Error)
		case client.EventRequestError:
			slog.Debug("request failed",
				"provider", e.Provider, "model", e.Model,
				"duration", e.Duration, "error", e.Error)
		case client.EventRequestComplete:
			attrs := []any{"provider", e.Provider, "model", e.Model, "duration", e.Duration}
			if e.Usage != nil {
				attrs = append(attrs, "input_tokens", e.Usage.InputTokens, "output_tokens", e.Usage.OutputTokens)
			}
			slog.Debug("request complete", attrs...)
		}
	}
}
