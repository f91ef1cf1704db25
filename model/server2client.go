package model

// ClientMessage is sent by a remote player for every key press.
type ClientMessage struct {
	Intent Intent
}

// ServerMessage answers a connect (Setup set) and every ClientMessage.
type ServerMessage struct {
	SessionId string
	Setup     bool
	Snapshot  Snapshot
}
