package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Jester/internal/config"
	"github.com/LISSConsulting/LISSTech.Jester/internal/fetcher"
	"github.com/LISSConsulting/LISSTech.Jester/internal/joke"
	"github.com/LISSConsulting/LISSTech.Jester/internal/logging"
	"github.com/LISSConsulting/LISSTech.Jester/internal/tui"
)

// fetchOptions carries the flags of `jester fetch`.
type fetchOptions struct {
	NoDelay bool
	JSON    bool
	Verbose bool
	Out     io.Writer
}

// executeTUI loads config and runs the joke card until the user quits.
func executeTUI(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	dir, err := cfg.BaseDir()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log, dir)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Close()

	ctx, cancel := signalContext()
	defer cancel()

	client := joke.NewClient(cfg.API.Endpoint, cfg.API.Timeout(), userAgent(), joke.WithLogger(log))
	model := tui.New(ctx, client, cfg.Timing, cfg.TUI.AccentColor, log)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	log.WithField("endpoint", client.Endpoint()).Info("jester started")
	return finishTUI(program)
}

// finishTUI runs the bubbletea program. Cancellation (signal) is treated as
// a normal shutdown.
func finishTUI(program *tea.Program) error {
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// executeFetch loads config, fetches one joke headlessly and prints it.
func executeFetch(configPath string, opts fetchOptions) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	var log *logging.Logger
	if opts.Verbose {
		log = logging.NewWriter(cfg.Log, os.Stderr)
	} else {
		dir, dirErr := cfg.BaseDir()
		if dirErr != nil {
			return dirErr
		}
		log, err = logging.New(cfg.Log, dir)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
	}
	defer log.Close()

	ctx, cancel := signalContext()
	defer cancel()

	reveal := cfg.Timing.RevealDelay()
	if opts.NoDelay {
		reveal = 0
	}

	client := joke.NewClient(cfg.API.Endpoint, cfg.API.Timeout(), userAgent(), joke.WithLogger(log))
	j, err := fetchOnce(ctx, client, fetcher.New(log), reveal)
	if err != nil {
		return err
	}
	return printJoke(opts.Out, j, opts.JSON)
}

// fetchOnce drives m through one request against src, holding the joke back
// for reveal before returning it.
func fetchOnce(ctx context.Context, src joke.Fetcher, m *fetcher.Machine, reveal time.Duration) (joke.Joke, error) {
	id := m.Request()

	j, err := src.Fetch(ctx)
	if err != nil {
		m.Fail(id, err)
		return joke.Joke{}, fmt.Errorf("fetch joke: %w", err)
	}
	if !m.Resolve(id, j) {
		return joke.Joke{}, fmt.Errorf("fetch joke: request %d superseded", id)
	}

	if reveal > 0 {
		timer := time.NewTimer(reveal)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return joke.Joke{}, ctx.Err()
		}
	}

	m.Reveal(id)
	shown, _ := m.Joke()
	return shown, nil
}

// printJoke writes j to w as plain text (mood, setup, punchline) or JSON.
func printJoke(w io.Writer, j joke.Joke, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(j)
	}
	_, err := fmt.Fprintf(w, "%s %s\n   %s\n", fetcher.Loaded.Mood(), j.Setup, j.Punchline)
	return err
}
