package app

import (
	"context"
	"time"

	"example.com/scoreboard/internal/scoreboard"
	"golang.org/x/sync/errgroup"
)

type fixture struct {
	Home, Away string
	HomeScore  int
	AwayScore  int
}

var demoFixtures = []fixture{
	{"Mexico", "Canada", 0, 5},
	{"Spain", "Brazil", 10, 2},
	{"Germany", "France", 2, 2},
	{"Uruguay", "Italy", 6, 6},
	{"Argentina", "Australia", 3, 1},
}

// Seed starts the demo fixtures one minute apart, ending at now, and sets
// their scores using at most workers goroutines. It returns the match ids in
// fixture order.
func Seed(ctx context.Context, board *scoreboard.Scoreboard, now time.Time, workers int) ([]string, error) {
	ids := make([]string, len(demoFixtures))

	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range demoFixtures {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			startedAt := now.Add(-time.Duration(len(demoFixtures)-1-i) * time.Minute)
			id, err := board.StartNewMatch(f.Home, f.Away, startedAt)
			if err != nil {
				return err
			}
			ids[i] = id
			return board.UpdateScore(id, f.HomeScore, f.AwayScore)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ids, nil
}
