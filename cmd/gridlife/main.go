//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"gridlife/internal/app"
	"gridlife/internal/recording"
	"gridlife/internal/recording/sqlite"
	"gridlife/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine := life.New(cfg.Rows, cfg.Cols)
	engine.RandomizeSeeded(cfg.Density, cfg.Seed)

	var recorder *recording.Recorder
	if cfg.Record != "" {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			log.Fatalf("open recording store: %v", err)
		}
		defer store.Close()

		recorder, err = recording.NewRecorder(context.Background(), store, cfg.Record, engine)
		if err != nil {
			log.Fatalf("start recording: %v", err)
		}
	}

	game := app.New(engine, cfg, recorder)
	size := engine.Size()

	ebiten.SetWindowTitle("gridlife — " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
