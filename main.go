// dungeon-inventory is an interactive demo of the spatial inventory: loot
// lands in the drop zone on the next tick and narration scrolls below.
//
// Environment:
//
//	DUNGEON_CONFIG_DIR   directory holding default/ and override/ (default "config")
//	DUNGEON_LOG_LEVEL    debug, info, warn or error (default info)
//	DUNGEON_LOG_FORMAT   text or json (default text)
//
// Logs are written to dungeon.log so they do not corrupt the terminal.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dungeon-inventory/assets"
	"dungeon-inventory/internal/catalog"
	"dungeon-inventory/internal/config"
	"dungeon-inventory/internal/game"

	"github.com/gdamore/tcell/v2"
)

const logFile = "dungeon.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer f.Close()
	logger := newLogger(os.Getenv("DUNGEON_LOG_LEVEL"), os.Getenv("DUNGEON_LOG_FORMAT"), f)

	paths := config.PathsFromEnv()
	grids := config.LoadGrid(paths, logger)
	texts := config.LoadTexts(paths, assets.DungeonTexts, logger)
	items, err := catalog.New(assets.Items)
	if err != nil {
		return fmt.Errorf("item catalog: %w", err)
	}
	logger.Info("configuration loaded",
		"default", paths.Default,
		"override", paths.Override,
		"items", items.Len(),
		"text_types", len(texts.Types()))

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g := game.New(screen, game.Options{
		Grid:     grids,
		Texts:    texts,
		Catalog:  items,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger:   logger,
		TickRate: game.DefaultTickRate,
	})
	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
