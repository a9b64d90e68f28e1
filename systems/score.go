package systems

import (
	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/logging"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// AddPoints adds points to a scoreboard and refreshes its text. A beaten
// high score is written to the board's store.
func AddPoints(scoreboard *donburi.Entry, points int) {
	if scoreboard == nil || !scoreboard.Valid() || !scoreboard.HasComponent(components.Score) {
		logging.L().Warn("points dropped, no scoreboard assigned", zap.Int("points", points))
		return
	}

	score := components.Score.Get(scoreboard)
	if score.Add(points) && score.Store != nil {
		if err := score.Store.SaveHighScore(score.HighScore); err != nil {
			logging.L().Warn("could not save high score", zap.Error(err))
		}
	}
	score.RefreshText()
}
