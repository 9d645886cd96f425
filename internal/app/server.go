package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bx-casino/internal/audit"
	"bx-casino/internal/cache"
	"bx-casino/internal/casino"
	"bx-casino/internal/config"
	"bx-casino/internal/db"
	"bx-casino/internal/event"
	"bx-casino/internal/ledger"
	"bx-casino/internal/logger"
	"bx-casino/internal/monitoring"
	"bx-casino/internal/security"
	"bx-casino/internal/wallet"
	"bx-casino/internal/ws"
)

type Server struct {
	app  *fiber.App
	port string
}

func NewServer() *Server {
	cfg := config.Load()
	logger.Init()
	monitoring.Init()

	database := db.Init(cfg.DBPath)
	rdb := cache.Init(cfg.RedisAddr)

	bus := event.NewBus()
	hub := ws.NewHub()

	ledgerService := ledger.New(database)
	walletService := wallet.New(database, ledgerService)
	auditService := audit.New(database)

	roundStore := casino.NewStore(database)
	casinoService := casino.NewService(roundStore, walletService, bus, casino.Options{
		HouseEdge: cfg.HouseEdge,
		MaxBet:    cfg.MaxBet,
	})
	leaderboard := casino.NewLeaderboard(rdb)
	commitments := cache.NewCommitments(rdb)

	casino.RegisterConsumers(bus, auditService, leaderboard, hub)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/ws", websocket.New(hub.Handler))

	api := app.Group("/api", security.APIKeyGuard(), security.UserContext())
	casino.RegisterRoutes(api, casinoService, leaderboard, commitments)
	wallet.RegisterRoutes(api, walletService)

	return &Server{app: app, port: cfg.Port}
}

func (s *Server) Start() error {
	return s.app.Listen(":" + s.port)
}
