package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"example.com/scoreboard/internal/config"
	"example.com/scoreboard/internal/console"
	"example.com/scoreboard/internal/country"
	"example.com/scoreboard/internal/scoreboard"
	"golang.org/x/sync/errgroup"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	countries *country.Validator
	board     *scoreboard.Scoreboard
	console   *console.Console

	in  io.Reader
	now func() time.Time
}

type Options struct {
	In  io.Reader        // defaults to os.Stdin
	Out io.Writer        // defaults to os.Stdout
	Now func() time.Time // defaults to time.Now
}

func New(cfg config.Config, log *slog.Logger, opts Options) *App {
	if log == nil {
		log = slog.Default()
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	countries := country.NewISO(cfg.Countries.Extra...)
	board := scoreboard.New(countries, log.With("component", "scoreboard"))
	con := console.New(board, countries, opts.Out, log.With("component", "console"), console.Options{
		Prompt:  cfg.Console.Prompt,
		Colours: cfg.Console.Colours,
		Now:     opts.Now,
	})

	return &App{
		cfg:       cfg,
		log:       log,
		countries: countries,
		board:     board,
		console:   con,
		in:        opts.In,
		now:       opts.Now,
	}
}

// Board exposes the scoreboard, mainly for tests.
func (a *App) Board() *scoreboard.Scoreboard {
	return a.board
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.Demo.Enabled {
		if _, err := Seed(ctx, a.board, a.now(), a.cfg.Demo.Workers); err != nil {
			return fmt.Errorf("seed demo matches: %w", err)
		}
		a.log.Info("demo matches seeded", "matches", a.board.Len())
	}

	a.log.Info("scoreboard ready", "countries", len(a.countries.Names()))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.console.Run(gctx, a.in)
	})

	err := g.Wait()
	a.log.Info("scoreboard stopped", "matchesInProgress", a.board.Len())
	return err
}
