package main

import (
	"github.com/matryer/way"
	"github.com/zucenko/runordye/server"
)

func (s *Server) routes() {
	s.router = way.NewRouter()
	s.router.HandleFunc("GET", server.URI_PLAY, s.GameServer.HandleHttpCall())
	s.router.HandleFunc("GET", server.URI_SESSION, s.GameServer.HandleSessionSnapshot())
}
