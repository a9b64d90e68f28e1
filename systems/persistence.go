package systems

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

const highScoreItem = "highscore"

// SavedScore represents the score data stored on disk
type SavedScore struct {
	HighScore int `json:"highScore"`
}

// GDataScoreStore keeps the high score in the per-user app data directory.
type GDataScoreStore struct {
	m *gdata.Manager
}

// OpenScoreStore opens the gdata storage for appName.
func OpenScoreStore(appName string) (*GDataScoreStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open score storage: %w", err)
	}
	return &GDataScoreStore{m: m}, nil
}

// LoadHighScore returns the stored high score, or 0 if nothing was saved yet.
func (s *GDataScoreStore) LoadHighScore() (int, error) {
	data, err := s.m.LoadItem(highScoreItem)
	if err != nil {
		return 0, fmt.Errorf("load high score: %w", err)
	}
	if len(data) == 0 {
		// No saved score yet
		return 0, nil
	}

	var saved SavedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return 0, fmt.Errorf("parse high score: %w", err)
	}
	return saved.HighScore, nil
}

// SaveHighScore writes score to disk.
func (s *GDataScoreStore) SaveHighScore(score int) error {
	data, err := json.Marshal(SavedScore{HighScore: score})
	if err != nil {
		return fmt.Errorf("serialize high score: %w", err)
	}
	if err := s.m.SaveItem(highScoreItem, data); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}
