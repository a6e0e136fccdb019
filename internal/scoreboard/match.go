package scoreboard

import "time"

// Score is the pair of goals of a match. Valid is false until the first
// score update, which lets a fresh match be told apart from a 0-0 one.
type Score struct {
	Home  int
	Away  int
	Valid bool
}

// Total returns the sum of both sides; an unset score counts as 0.
func (s Score) Total() int {
	if !s.Valid {
		return 0
	}
	return s.Home + s.Away
}

// Match is a read-only copy of a match held by the Scoreboard.
type Match struct {
	HomeTeam  string
	AwayTeam  string
	StartTime time.Time
	Score     Score
}

// HomeScore returns the home goals and whether a score has been set.
func (m Match) HomeScore() (int, bool) {
	return m.Score.Home, m.Score.Valid
}

// AwayScore returns the away goals and whether a score has been set.
func (m Match) AwayScore() (int, bool) {
	return m.Score.Away, m.Score.Valid
}

func (m Match) Total() int {
	return m.Score.Total()
}

// Equal reports whether both matches are the same fixture: same teams and
// start time. Scores are not compared.
func (m Match) Equal(o Match) bool {
	return m.HomeTeam == o.HomeTeam &&
		m.AwayTeam == o.AwayTeam &&
		m.StartTime.Equal(o.StartTime)
}
