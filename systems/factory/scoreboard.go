package factory

import (
	"github.com/automoto/throwrange/archetypes"
	"github.com/automoto/throwrange/components"
	"github.com/automoto/throwrange/logging"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateScoreboard creates a scoreboard starting at zero. The high score is
// loaded from store when one is given.
func CreateScoreboard(ecs *ecs.ECS, store components.ScoreStore) *donburi.Entry {
	board := archetypes.Scoreboard.Spawn(ecs)

	score := components.ScoreData{Store: store}
	if store != nil {
		high, err := store.LoadHighScore()
		if err != nil {
			logging.L().Warn("could not load high score", zap.Error(err))
		}
		score.HighScore = high
	}
	score.RefreshText()

	components.Score.SetValue(board, score)
	return board
}
