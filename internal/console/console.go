// Package console drives a scoreboard from line-oriented text commands.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"example.com/scoreboard/internal/scoreboard"
	"github.com/gookit/color"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong usage")
)

const usage = `commands:
  start <home> | <away>        start a match now and print its id
  update <id> <home> <away>    set the score of a match
  finish <id>                  remove a match from the board
  summary                      print matches in progress, best first
  countries                    print recognized team names
  help                         print this help
  quit                         leave`

// Board is the part of the scoreboard the console needs.
type Board interface {
	StartNewMatch(homeTeam, awayTeam string, startTime time.Time) (string, error)
	UpdateScore(matchID string, homeScore, awayScore int) error
	FinishMatch(matchID string) error
	Summary() []scoreboard.Match
}

type NameLister interface {
	Names() []string
}

type Options struct {
	Prompt  string
	Colours bool
	Now     func() time.Time // defaults to time.Now
}

type Console struct {
	board     Board
	countries NameLister
	out       io.Writer
	opts      Options
	log       *slog.Logger
}

func New(board Board, countries NameLister, out io.Writer, log *slog.Logger, opts Options) *Console {
	if log == nil {
		log = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Console{
		board:     board,
		countries: countries,
		out:       out,
		opts:      opts,
		log:       log,
	}
}

// Run executes commands read from in until EOF, a quit command, or ctx is
// done. Command errors are printed and do not stop the session.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	c.log.Info("console session started")
	defer c.log.Info("console session ended")

	for {
		c.printPrompt()

		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("read commands: %w", err)
					}
				default:
				}
				return nil
			}

			quit, err := c.Exec(line)
			if err != nil {
				c.log.Debug("command failed", "line", line, "err", err)
				c.printError(err)
			}
			if quit {
				return nil
			}
		}
	}
}

// Exec runs a single command line. It reports quit=true for quit/exit.
func (c *Console) Exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	cmd, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "start":
		return false, c.start(rest)
	case "update":
		return false, c.update(strings.Fields(rest))
	case "finish":
		return false, c.finish(strings.Fields(rest))
	case "summary":
		c.printSummary()
		return false, nil
	case "countries":
		for _, name := range c.countries.Names() {
			fmt.Fprintln(c.out, name)
		}
		return false, nil
	case "help":
		fmt.Fprintln(c.out, usage)
		return false, nil
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

func (c *Console) start(args string) error {
	home, away, ok := strings.Cut(args, "|")
	if !ok {
		return fmt.Errorf("%w: start <home> | <away>", ErrUsage)
	}

	id, err := c.board.StartNewMatch(strings.TrimSpace(home), strings.TrimSpace(away), c.opts.Now())
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, id)
	return nil
}

func (c *Console) update(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: update <id> <home> <away>", ErrUsage)
	}
	home, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: home score %q is not a number", ErrUsage, args[1])
	}
	away, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("%w: away score %q is not a number", ErrUsage, args[2])
	}
	return c.board.UpdateScore(args[0], home, away)
}

func (c *Console) finish(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: finish <id>", ErrUsage)
	}
	return c.board.FinishMatch(args[0])
}

func (c *Console) printPrompt() {
	if c.opts.Prompt == "" {
		return
	}
	fmt.Fprint(c.out, c.opts.Prompt)
}

func (c *Console) printError(err error) {
	msg := "error: " + err.Error()
	if c.opts.Colours {
		msg = color.New(color.FgRed, color.OpBold).Render(msg)
	}
	fmt.Fprintln(c.out, msg)
}
