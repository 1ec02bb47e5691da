package main // entry point of the seat-occupancy tracker

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/classtrack/occupancy-tracker/internal/bootstrap"
	"github.com/classtrack/occupancy-tracker/internal/config"
	"github.com/classtrack/occupancy-tracker/internal/database"
	"github.com/classtrack/occupancy-tracker/internal/handler"
	"github.com/classtrack/occupancy-tracker/internal/queue"
	"github.com/classtrack/occupancy-tracker/internal/repository"
	"github.com/classtrack/occupancy-tracker/internal/router"
	"github.com/classtrack/occupancy-tracker/internal/session"
	"github.com/classtrack/occupancy-tracker/migrations"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()

	log, err := config.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrations.Apply(ctx, db); err != nil {
		log.Fatal("apply migrations", zap.Error(err))
	}

	accounts := repository.NewAccountRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	ledger := repository.NewLedgerRepo(db)
	seatRepo := repository.NewSeatRepo(db, ledger)

	if err := bootstrap.SeedRooms(ctx, log, roomRepo, cfg.SeedRooms); err != nil {
		log.Fatal("seed rooms", zap.Error(err))
	}

	rdb := config.NewRedisClient()
	var sessions session.Store
	if rdb != nil {
		sessions = session.NewRedisStore(rdb)
	} else {
		// Single-node fallback: sessions die with the process.
		log.Warn("redis unreachable, using in-process session store")
		sessions = session.NewMemoryStore()
	}

	publisher := queue.NewPublisher(cfg.EventsEnabled, log)

	authH := handler.NewAuthHandler(cfg, accounts, sessions)
	roomH := handler.NewRoomHandler(roomRepo, seatRepo, ledger)
	seatH := handler.NewSeatHandler(seatRepo, publisher, log)

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, rdb, sessions, authH, roomH, seatH)

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))

	if err := e.Start(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
