package components

import (
	"fmt"

	cfg "github.com/automoto/throwrange/config"
	"github.com/yohamta/donburi"
)

// ScoreStore persists the best score across sessions.
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// ScoreData is a scoreboard. Targets hold a reference to the scoreboard they
// feed, so a range may run several independent boards.
type ScoreData struct {
	Score     int
	HighScore int
	Text      string
	Store     ScoreStore // nil disables persistence
}

var Score = donburi.NewComponentType[ScoreData]()

// Add adds points and reports whether the high score moved.
func (s *ScoreData) Add(points int) bool {
	s.Score += points
	if s.Score > s.HighScore {
		s.HighScore = s.Score
		return true
	}
	return false
}

// RefreshText re-renders the score text from the current score.
func (s *ScoreData) RefreshText() {
	s.Text = fmt.Sprintf(cfg.Range.ScoreText, s.Score)
}
