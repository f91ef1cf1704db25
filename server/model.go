package server

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/zucenko/runordye/config"
	"github.com/zucenko/runordye/model"
)

type GameServer struct {
	Config       config.Config
	Layout       *model.Grid
	Upgrader     *websocket.Upgrader
	GameRequests chan GameRequest
	Closed       chan *GameSession
	Lookups      chan SessionLookup

	sessions map[uuid.UUID]*GameSession
	seeds    int64
	quit     chan struct{}
	stopOnce sync.Once
}

type GameSessionState int

const (
	GS_NEW GameSessionState = iota
	GS_PLAY
	GS_ERR
	GS_OVER
)

// GameSession is one connected player with a game of their own. The game is
// touched only by the session Loop goroutine.
type GameSession struct {
	Id    uuid.UUID
	State GameSessionState
	Game  *model.Game
	Conn  *websocket.Conn

	Events         chan model.Intent
	Snapshots      chan chan model.Snapshot
	MessagesToSend chan model.ServerMessage
	Done           chan struct{}

	doneOnce sync.Once

	DebugInMessages  int64
	DebugOutMessages int64
}

func (gs *GameSession) close() {
	gs.doneOnce.Do(func() { close(gs.Done) })
}

func (gs *GameSession) countIn() {
	atomic.AddInt64(&gs.DebugInMessages, 1)
}

func (gs *GameSession) countOut() {
	atomic.AddInt64(&gs.DebugOutMessages, 1)
}
