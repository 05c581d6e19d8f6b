package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"aceduel/internal/config"
	"aceduel/internal/console"
	"aceduel/internal/database"
	"aceduel/internal/game"
	"aceduel/internal/logging"
	"aceduel/internal/server"
	"aceduel/internal/shared"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Logging
	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// 3. Duel history
	var db *database.Service
	if cfg.Database != "" {
		db, err = database.New(cfg.Database, logger)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer db.Close()
	}

	// 4. Spectator feed
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := server.NewHub(logger)
	var srv *http.Server
	if cfg.SpectateAddr != "" {
		go hub.Run(ctx)
		srv = &http.Server{Addr: cfg.SpectateAddr, Handler: server.NewMux(hub, db)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("spectator server stopped", zap.Error(err))
			}
		}()
		logger.Info("spectator feed listening", zap.String("addr", cfg.SpectateAddr))
	}

	// 5. Duels
	term := console.New(os.Stdin, os.Stdout)
	src := shared.NewRandSource()
	for {
		vsComputer, err := term.SelectMode()
		if err != nil {
			log.Fatalf("Failed to select mode: %v", err)
		}
		playDuel(cfg, logger, db, hub, srv != nil, term, src, vsComputer)
		if !term.PlayAgain() {
			break
		}
	}

	// 6. Shut down
	if srv != nil {
		shutdownCtx, stop := context.WithTimeout(ctx, 2*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("spectator server shutdown", zap.Error(err))
		}
	}
}

// playDuel runs one duel in the terminal and records its result.
func playDuel(cfg *config.Config, logger *zap.Logger, db *database.Service, hub *server.Hub, spectate bool, term *console.Console, src shared.Source, vsComputer bool) {
	players := [2]*shared.Player{
		shared.NewPlayer(cfg.Player1Name, false),
		shared.NewPlayer(cfg.SecondName(vsComputer), vsComputer),
	}
	controllers := [2]game.Controller{console.NewHumanController(term), console.NewHumanController(term)}
	if vsComputer {
		controllers[1] = game.NewComputerController(src)
	}

	g := game.NewGame(players, vsComputer, src, logger)
	if spectate {
		g.SetSender(hub.Publish)
		pterm.Info.Printfln("Spectators can watch game %s at ws://%s/ws", g.ID, cfg.SpectateAddr)
	}
	logger.Info("duel starting", zap.String("game_id", g.ID), zap.Bool("vs_computer", vsComputer))

	res, err := g.Run(controllers, term)
	if err != nil {
		log.Fatalf("Duel failed: %v", err)
	}

	if db != nil {
		if err := db.Insert(database.FromGame(g, res, time.Now())); err != nil {
			logger.Error("failed to record duel", zap.String("game_id", g.ID), zap.Error(err))
		}
	}
}
