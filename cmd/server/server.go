package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/runordye/config"
	"github.com/zucenko/runordye/model"
	"github.com/zucenko/runordye/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Infof(".env file not found or could not be loaded: %v", err)
	}

	cfg, err := config.Load(os.Getenv("RUNORDYE_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg.ApplyLogLevel()

	var layout *model.Grid
	if cfg.Map != "" {
		layout, err = model.LoadGrid(cfg.Map)
		if err != nil {
			log.Fatalf("map: %v", err)
		}
	}

	s := Server{
		GameServer: server.NewGameServer(cfg, layout),
	}
	go s.GameServer.Loop()
	s.routes()

	port := getEnvWithDefault("PORT", "8080")
	log.Printf("listening on port %s", port)
	log.Fatalln(http.ListenAndServe(":"+port, s.router))
}
