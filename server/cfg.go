package server

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/runordye/config"
	"github.com/zucenko/runordye/model"
)

// BaseSeed returns cfg.Seed, or a time based seed when it is zero.
func BaseSeed(cfg config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// newSession builds a session with a fresh game. Only the server Loop calls
// it, so the seed counter needs no locking.
func (s *GameServer) newSession() (*GameSession, error) {
	s.seeds++
	rnd := rand.New(rand.NewSource(s.seeds))

	var game *model.Game
	var err error
	if s.Layout != nil {
		game, err = model.NewGameWithLayout(s.Config, s.Layout, rnd)
	} else {
		game, err = model.NewGame(s.Config, rnd)
	}
	if err != nil {
		return nil, err
	}

	gs := &GameSession{
		Id:             uuid.New(),
		State:          GS_NEW,
		Game:           game,
		Events:         make(chan model.Intent, 10),
		Snapshots:      make(chan chan model.Snapshot),
		MessagesToSend: make(chan model.ServerMessage, 10),
		Done:           make(chan struct{}),
	}
	log.WithFields(log.Fields{"session": gs.Id, "seed": s.seeds}).Info("create GameSession")
	return gs, nil
}
