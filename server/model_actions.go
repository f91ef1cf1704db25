package server

import (
	"encoding/gob"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/runordye/config"
	"github.com/zucenko/runordye/model"
)

const (
	URI_PLAY    = "/play"
	URI_SESSION = "/sessions/:id"
)

const timeout = 200 * time.Millisecond

// NewGameServer prepares a server. layout may be nil for random obstacles.
// Loop must be running before handlers are served.
func NewGameServer(cfg config.Config, layout *model.Grid) *GameServer {
	return &GameServer{
		Config:       cfg,
		Layout:       layout,
		Upgrader:     &websocket.Upgrader{},
		GameRequests: make(chan GameRequest),
		Closed:       make(chan *GameSession),
		Lookups:      make(chan SessionLookup),
		sessions:     make(map[uuid.UUID]*GameSession),
		seeds:        BaseSeed(cfg),
		quit:         make(chan struct{}),
	}
}

// Loop owns the session registry.
func (s *GameServer) Loop() {
	log.Printf("GameServer.Loop starting")
	for {
		select {
		case gameReq := <-s.GameRequests:
			gs, err := s.newSession()
			if err == nil {
				s.sessions[gs.Id] = gs
				go gs.Loop()
			}
			gameReq.GameContextAwaiting <- GameContextAwaiting{GameSession: gs, Err: err}
		case gs := <-s.Closed:
			delete(s.sessions, gs.Id)
			log.WithField("session", gs.Id).Info("GameSession removed")
		case lookup := <-s.Lookups:
			lookup.Reply <- s.sessions[lookup.Id]
		case <-s.quit:
			for _, gs := range s.sessions {
				gs.close()
			}
			log.Printf("GameServer.Loop stopped")
			return
		}
	}
}

func (s *GameServer) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
}

func (s *GameServer) HandleHttpCall() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("HandleHttpCall - connection received")

		gcas := make(chan GameContextAwaiting, 1)
		select {
		case s.GameRequests <- GameRequest{GameContextAwaiting: gcas}:
		case <-time.After(timeout):
			log.Warn("GameRequests TIMEOUTED")
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		gca := <-gcas
		if gca.Err != nil {
			log.Errorf("HandleHttpCall cant create game: %v", gca.Err)
			w.WriteHeader(HTTP_SERVER_ERR)
			return
		}
		gs := gca.GameSession
		defer s.release(gs)

		con, err := s.Upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnf("HandleHttpCall websocket upgrade err %v", err)
			return
		}
		defer con.Close()
		gs.Conn = con

		con.SetPingHandler(func(message string) error {
			err := con.WriteControl(websocket.PongMessage, []byte(message), time.Now().Add(time.Second))
			if err == websocket.ErrCloseSent {
				return nil
			}
			return err
		})

		go gs.LoopChannelWrite()
		gs.LoopChannelRead()
	}
}

// release stops the session and takes it out of the registry.
func (s *GameServer) release(gs *GameSession) {
	gs.close()
	select {
	case s.Closed <- gs:
	case <-s.quit:
	}
}

type sessionView struct {
	Id     string         `json:"id"`
	Status string         `json:"status"`
	Game   model.Snapshot `json:"game"`
}

// HandleSessionSnapshot reports the current state of a running session as JSON.
func (s *GameServer) HandleSessionSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(way.Param(r.Context(), "id"))
		if err != nil {
			w.WriteHeader(HTTP_BAD_REQUEST)
			return
		}

		reply := make(chan *GameSession, 1)
		select {
		case s.Lookups <- SessionLookup{Id: id, Reply: reply}:
		case <-time.After(timeout):
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		gs := <-reply
		if gs == nil {
			w.WriteHeader(HTTP_NOT_FOUND)
			return
		}

		snaps := make(chan model.Snapshot, 1)
		select {
		case gs.Snapshots <- snaps:
		case <-gs.Done:
			w.WriteHeader(HTTP_NOT_FOUND)
			return
		case <-time.After(timeout):
			w.WriteHeader(HTTP_TIMEOUT)
			return
		}
		snap := <-snaps

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(sessionView{
			Id:     gs.Id.String(),
			Status: snap.Status.Name(),
			Game:   snap,
		})
		if err != nil {
			log.Warnf("HandleSessionSnapshot cant encode %v", err)
		}
	}
}

// Loop runs the game of one session: every intent is one Turn answered by
// a fresh snapshot.
func (gs *GameSession) Loop() {
	log.WithField("session", gs.Id).Info("GameSession.Loop start")
	gs.State = GS_PLAY
	gs.send(gs.message(true))
	for {
		select {
		case intent := <-gs.Events:
			wasOver := gs.Game.Over()
			if err := gs.Game.Turn(intent); err != nil {
				log.Errorf("GameSession.Loop turn failed: %v", err)
				gs.State = GS_ERR
				gs.close()
				return
			}
			if !wasOver && gs.Game.Over() {
				log.WithFields(log.Fields{"session": gs.Id, "turns": gs.Game.Turns}).Info("player caught")
			}
			gs.send(gs.message(false))
		case reply := <-gs.Snapshots:
			reply <- gs.Game.Snapshot()
		case <-gs.Done:
			if gs.State != GS_ERR {
				gs.State = GS_OVER
			}
			log.WithField("session", gs.Id).Infof("GameSession.Loop ended %s", gs.State.Name())
			return
		}
	}
}

func (gs *GameSession) message(setup bool) model.ServerMessage {
	return model.ServerMessage{
		SessionId: gs.Id.String(),
		Setup:     setup,
		Snapshot:  gs.Game.Snapshot(),
	}
}

func (gs *GameSession) send(m model.ServerMessage) {
	select {
	case gs.MessagesToSend <- m:
	default:
		log.Warnf("GameSession %s dropping message, MessagesToSend FULL", gs.Id)
	}
}

func (gs *GameSession) LoopChannelRead() {
	log.Debugf("LoopChannelRead STARTED")
	defer log.Debugf("LoopChannelRead ENDED")
	for {
		_, r, err := gs.Conn.NextReader()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Infof("LoopChannelRead closed by client")
			} else {
				log.Warnf("LoopChannelRead err reading message from Conn %v", err)
			}
			return
		}
		cm := model.ClientMessage{}
		if err := gob.NewDecoder(r).Decode(&cm); err != nil {
			log.Warnf("LoopChannelRead cant decode %v", err)
			return
		}
		gs.countIn()

		select {
		case gs.Events <- cm.Intent:
		case <-gs.Done:
			return
		default:
			log.Warnf("Dropping %s, GameSession.Events FULL", cm.Intent.Name())
		}
	}
}

// LoopChannelWrite is the only writer of data frames on the connection.
func (gs *GameSession) LoopChannelWrite() {
	log.Debugf("LoopChannelWrite STARTED")
	defer log.Debugf("LoopChannelWrite ENDED")
	for {
		select {
		case mes := <-gs.MessagesToSend:
			if err := gs.write(mes); err != nil {
				log.Warnf("LoopChannelWrite cant write %v", err)
				gs.close()
				gs.Conn.Close()
				return
			}
			gs.countOut()
		case <-gs.Done:
			return
		}
	}
}

func (gs *GameSession) write(mes model.ServerMessage) error {
	w, err := gs.Conn.NextWriter(websocket.BinaryMessage)
	if err != nil {
		return err
	}
	if err := gob.NewEncoder(w).Encode(mes); err != nil {
		return err
	}
	return w.Close()
}
