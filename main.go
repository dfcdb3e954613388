// cinder-roguelike is the terminal sandbox for the environmental rule
// engine. Build:
//
//	go build -o cinder-roguelike .
//
// Settings come from the environment (and an optional .env file); flags
// override the most common ones:
//
//	./cinder-roguelike [--seed 42] [--zone discovery] [--content ./assets/content]
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"cinder-roguelike/assets"
	"cinder-roguelike/internal/config"
	"cinder-roguelike/internal/content"
	"cinder-roguelike/internal/game"
	"cinder-roguelike/internal/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flag.Var(config.SeedValue{Seed: &cfg.RunSeed}, "seed", "run seed (32-bit integer)")
	flag.StringVar(&cfg.Zone, "zone", cfg.Zone, "zone to play: demo or discovery")
	flag.StringVar(&cfg.ContentDir, "content", cfg.ContentDir, "content directory (embedded set when empty)")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file (stderr would corrupt the screen)")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.LogFile == "" {
		logger.Discard()
	} else {
		closeLog, err := logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, File: cfg.LogFile})
		if err != nil {
			return err
		}
		defer closeLog()
	}

	var src fs.FS = assets.Content
	if cfg.ContentDir != "" {
		src = os.DirFS(cfg.ContentDir)
	}
	reg, err := content.Load(src, cfg.Lang)
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	session, err := game.NewSession(game.OptionsFromConfig(cfg, reg))
	if err != nil {
		return err
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	game.New(screen, session).Run()
	return nil
}
