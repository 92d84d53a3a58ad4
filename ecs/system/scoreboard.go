package system

import (
	"encoding/json"
	"fmt"
	"log"
)

const scoreItemKey = "score"

// ScoreStore persists small blobs by key. *gdata.Manager satisfies it.
type ScoreStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

type savedScore struct {
	Best int `json:"best"`
}

// Scoreboard counts gathered collectibles and hazard hits for one session and
// keeps the best score across sessions when a store is attached.
type Scoreboard struct {
	Score      int
	Best       int
	HazardHits int

	store ScoreStore
}

// NewScoreboard loads the saved best score. A nil store keeps everything in
// memory.
func NewScoreboard(store ScoreStore) (*Scoreboard, error) {
	s := &Scoreboard{store: store}
	if store == nil {
		return s, nil
	}
	data, err := store.LoadItem(scoreItemKey)
	if err != nil {
		return s, fmt.Errorf("scoreboard: load: %w", err)
	}
	if data == nil {
		return s, nil
	}
	var saved savedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return s, fmt.Errorf("scoreboard: parse: %w", err)
	}
	s.Best = saved.Best
	return s, nil
}

func (s *Scoreboard) OnCollectibleGathered() {
	s.Score++
	if s.Score > s.Best {
		s.Best = s.Score
		if err := s.save(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func (s *Scoreboard) OnHazardContact() {
	s.HazardHits++
}

func (s *Scoreboard) save() error {
	if s.store == nil {
		return nil
	}
	data, err := json.Marshal(savedScore{Best: s.Best})
	if err != nil {
		return fmt.Errorf("scoreboard: encode: %w", err)
	}
	if err := s.store.SaveItem(scoreItemKey, data); err != nil {
		return fmt.Errorf("scoreboard: save: %w", err)
	}
	return nil
}
