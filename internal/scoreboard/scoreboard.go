//go:generate go run go.uber.org/mock/mockgen -source=scoreboard.go -destination=mocks/mock_validator.go -package=mocks
package scoreboard

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// CountryValidator decides whether two team names may play each other.
type CountryValidator interface {
	IsRecognized(name string) bool
	ValidatePair(homeTeam, awayTeam string) error
}

// Scoreboard keeps the matches currently in progress. It is safe for
// concurrent use.
//
// A match id that is not (or no longer) on the board is silently ignored by
// UpdateScore and FinishMatch.
type Scoreboard struct {
	validator CountryValidator
	store     *matchStore
	log       *slog.Logger
}

func New(validator CountryValidator, log *slog.Logger) *Scoreboard {
	if log == nil {
		log = slog.Default()
	}
	return &Scoreboard{
		validator: validator,
		store:     newMatchStore(),
		log:       log,
	}
}

// StartNewMatch puts a new match with an unset score on the board and returns
// its id. Nothing is stored when validation fails.
func (s *Scoreboard) StartNewMatch(homeTeam, awayTeam string, startTime time.Time) (string, error) {
	if homeTeam == "" || awayTeam == "" || startTime.IsZero() {
		return "", fmt.Errorf("start match: %w", ErrInvalidArgument)
	}
	if err := s.validator.ValidatePair(homeTeam, awayTeam); err != nil {
		return "", fmt.Errorf("start match: %w", err)
	}

	m := Match{
		HomeTeam:  homeTeam,
		AwayTeam:  awayTeam,
		StartTime: startTime,
	}

	matchID := uuid.NewString()
	for !s.store.Create(matchID, m) {
		matchID = uuid.NewString()
	}

	s.log.Debug("match started", "matchId", matchID, "home", homeTeam, "away", awayTeam)
	return matchID, nil
}

// UpdateScore replaces both scores of the match. Negative values are accepted.
func (s *Scoreboard) UpdateScore(matchID string, homeScore, awayScore int) error {
	if matchID == "" {
		return fmt.Errorf("update score: %w", ErrInvalidArgument)
	}

	e, ok := s.store.Get(matchID)
	if !ok {
		return nil
	}
	e.setScore(homeScore, awayScore)

	s.log.Debug("score updated", "matchId", matchID, "home", homeScore, "away", awayScore)
	return nil
}

// FinishMatch removes the match from the board.
func (s *Scoreboard) FinishMatch(matchID string) error {
	if matchID == "" {
		return fmt.Errorf("finish match: %w", ErrInvalidArgument)
	}

	s.store.Delete(matchID)

	s.log.Debug("match finished", "matchId", matchID)
	return nil
}

// Get returns a copy of a single match.
func (s *Scoreboard) Get(matchID string) (Match, bool) {
	e, ok := s.store.Get(matchID)
	if !ok {
		return Match{}, false
	}
	return e.snapshot(), true
}

// Len returns the number of matches in progress.
func (s *Scoreboard) Len() int {
	return s.store.Len()
}

// Summary returns the matches in progress ordered by total score, highest
// first. Equal totals are ordered by start time, most recent first, and then
// by the order in which they were started, latest first.
//
// The returned slice is a fresh copy; it is empty, not nil, when no match is
// in progress.
func (s *Scoreboard) Summary() []Match {
	type row struct {
		match Match
		seq   uint64
	}

	rows := lo.Map(s.store.All(), func(e *entry, _ int) row {
		return row{match: e.snapshot(), seq: e.seq}
	})

	slices.SortFunc(rows, func(a, b row) int {
		if c := cmp.Compare(b.match.Total(), a.match.Total()); c != 0 {
			return c
		}
		if c := b.match.StartTime.Compare(a.match.StartTime); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	return lo.Map(rows, func(r row, _ int) Match {
		return r.match
	})
}
