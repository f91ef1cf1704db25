package main

import (
	"math/rand"

	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/runordye/config"
	"github.com/zucenko/runordye/model"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Load reads the config file (empty path for defaults) and starts a game.
// A non-zero seed overrides the configured one.
func Load(path string, seed int64) (*model.Game, config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cfg, err
	}
	cfg.ApplyLogLevel()
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Int63()
	}
	log.Infof("seed %d", cfg.Seed)
	rnd := rand.New(rand.NewSource(cfg.Seed))

	if cfg.Map == "" {
		g, err := model.NewGame(cfg, rnd)
		return g, cfg, err
	}
	layout, err := model.LoadGrid(cfg.Map)
	if err != nil {
		return nil, cfg, err
	}
	cfg.Width, cfg.Height = layout.Width(), layout.Height()
	g, err := model.NewGameWithLayout(cfg, layout, rnd)
	return g, cfg, err
}

func loadFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
