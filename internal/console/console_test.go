package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"example.com/scoreboard/internal/country"
	"example.com/scoreboard/internal/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 14, 18, 0, 0, 0, time.UTC)

func newTestConsole() (*Console, *scoreboard.Scoreboard, *bytes.Buffer) {
	countries := country.New("Poland", "United States", "Mexico", "Canada")
	board := scoreboard.New(countries, nil)
	out := &bytes.Buffer{}
	c := New(board, countries, out, nil, Options{Now: func() time.Time { return fixedNow }})
	return c, board, out
}

func TestConsole_Exec(t *testing.T) {
	type scenario struct {
		name string
		run  func(t *testing.T)
	}

	cases := []scenario{
		{
			name: "start prints the new id",
			run: func(t *testing.T) {
				c, board, out := newTestConsole()

				quit, err := c.Exec("start Poland | United States")
				require.NoError(t, err)
				require.False(t, quit)

				summary := board.Summary()
				require.Len(t, summary, 1)
				assert.Equal(t, "Poland", summary[0].HomeTeam)
				assert.Equal(t, "United States", summary[0].AwayTeam)
				assert.True(t, summary[0].StartTime.Equal(fixedNow))
				assert.Len(t, strings.TrimSpace(out.String()), 36)
			},
		},
		{
			name: "start without separator",
			run: func(t *testing.T) {
				c, _, _ := newTestConsole()
				_, err := c.Exec("start Poland United States")
				require.ErrorIs(t, err, ErrUsage)
			},
		},
		{
			name: "start surfaces validation errors",
			run: func(t *testing.T) {
				c, board, _ := newTestConsole()
				_, err := c.Exec("start Poland | Poland")
				require.ErrorIs(t, err, country.ErrDuplicateCountry)
				_, err = c.Exec("start Poland | Narnia")
				require.ErrorIs(t, err, country.ErrInvalidCountryName)
				_, err = c.Exec("start | Poland")
				require.ErrorIs(t, err, scoreboard.ErrInvalidArgument)
				require.Empty(t, board.Summary())
			},
		},
		{
			name: "update and finish",
			run: func(t *testing.T) {
				c, board, out := newTestConsole()
				_, err := c.Exec("start Mexico | Canada")
				require.NoError(t, err)
				id := strings.TrimSpace(out.String())

				_, err = c.Exec("update " + id + " 0 5")
				require.NoError(t, err)
				require.Equal(t, scoreboard.Score{Home: 0, Away: 5, Valid: true}, board.Summary()[0].Score)

				_, err = c.Exec("finish " + id)
				require.NoError(t, err)
				require.Empty(t, board.Summary())
			},
		},
		{
			name: "update usage errors",
			run: func(t *testing.T) {
				c, _, _ := newTestConsole()
				for _, line := range []string{"update", "update id 1", "update id one 2", "update id 1 two", "finish", "finish a b"} {
					_, err := c.Exec(line)
					require.ErrorIs(t, err, ErrUsage, line)
				}
			},
		},
		{
			name: "update of unknown id is silent",
			run: func(t *testing.T) {
				c, _, out := newTestConsole()
				_, err := c.Exec("update nope 1 0")
				require.NoError(t, err)
				require.Empty(t, out.String())
			},
		},
		{
			name: "summary renders a table",
			run: func(t *testing.T) {
				c, board, out := newTestConsole()
				id, err := board.StartNewMatch("Poland", "United States", fixedNow)
				require.NoError(t, err)
				require.NoError(t, board.UpdateScore(id, 1, 0))
				_, err = board.StartNewMatch("Mexico", "Canada", fixedNow.Add(time.Minute))
				require.NoError(t, err)

				_, err = c.Exec("summary")
				require.NoError(t, err)

				text := out.String()
				assert.Contains(t, text, "1 - 0")
				assert.Less(t, strings.Index(text, "Poland"), strings.Index(text, "Mexico"))
				assert.Contains(t, text, "2024-06-14 18:01:00")
			},
		},
		{
			name: "empty summary",
			run: func(t *testing.T) {
				c, _, out := newTestConsole()
				_, err := c.Exec("summary")
				require.NoError(t, err)
				require.Equal(t, "no matches in progress\n", out.String())
			},
		},
		{
			name: "countries are listed alphabetically",
			run: func(t *testing.T) {
				c, _, out := newTestConsole()
				_, err := c.Exec("countries")
				require.NoError(t, err)
				require.Equal(t, "Canada\nMexico\nPoland\nUnited States\n", out.String())
			},
		},
		{
			name: "blank lines, comments and quit",
			run: func(t *testing.T) {
				c, _, _ := newTestConsole()
				for _, line := range []string{"", "   ", "# comment"} {
					quit, err := c.Exec(line)
					require.NoError(t, err)
					require.False(t, quit)
				}
				quit, err := c.Exec("QUIT")
				require.NoError(t, err)
				require.True(t, quit)
			},
		},
		{
			name: "unknown command",
			run: func(t *testing.T) {
				c, _, _ := newTestConsole()
				_, err := c.Exec("kickoff")
				require.ErrorIs(t, err, ErrUnknownCommand)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, tc.run)
	}
}

func TestConsole_Run(t *testing.T) {
	c, board, out := newTestConsole()

	script := strings.Join([]string{
		"start Poland | United States",
		"bogus",
		"start Mexico | Canada",
		"quit",
		"start Poland | Canada",
	}, "\n")

	err := c.Run(context.Background(), strings.NewReader(script))
	require.NoError(t, err)

	require.Len(t, board.Summary(), 2, "commands after quit must not run")
	require.Contains(t, out.String(), `error: unknown command: "bogus"`)
}

func TestConsole_Run_StopsAtEOF(t *testing.T) {
	c, board, _ := newTestConsole()

	err := c.Run(context.Background(), strings.NewReader("start Mexico | Canada\n"))
	require.NoError(t, err)
	require.Len(t, board.Summary(), 1)
}

func TestConsole_Run_StopsOnCancel(t *testing.T) {
	c, _, _ := newTestConsole()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// a reader that never returns data
	pr, pw := io.Pipe()
	defer pw.Close()

	require.NoError(t, c.Run(ctx, pr))
}
