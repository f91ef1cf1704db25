package server

import (
	"fmt"

	"github.com/google/uuid"
)

const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_NEW:
		return "GS_NEW"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_ERR:
		return "GS_ERR"
	case GS_OVER:
		return "GS_OVER"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

type GameContextAwaiting struct {
	GameSession *GameSession
	Err         error
}

// GameRequest asks the server loop to create and register a session.
type GameRequest struct {
	GameContextAwaiting chan GameContextAwaiting
}

type SessionLookup struct {
	Id    uuid.UUID
	Reply chan *GameSession
}
