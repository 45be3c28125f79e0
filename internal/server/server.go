package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/fintechx/casino/internal/config"
	gameRepo "github.com/fintechx/casino/pkg/repositories/game"
	walletRepo "github.com/fintechx/casino/pkg/repositories/wallet"
	"github.com/fintechx/casino/pkg/random"
	"github.com/fintechx/casino/pkg/services/concierge"
	"github.com/fintechx/casino/pkg/services/games"
	"github.com/fintechx/casino/pkg/services/lobby"
	"github.com/fintechx/casino/pkg/services/statistics"
	"github.com/fintechx/casino/pkg/services/wallet"
)

// Server is the HTTP surface of the casino. All rules live in the
// services; handlers only translate requests and errors.
type Server struct {
	app       *fiber.App
	manager   *Manager
	registry  *games.Registry
	stats     *statistics.Service
	concierge *concierge.Service
	hub       *lobby.Hub
	rng       random.Source
	wallets   wallet.WalletService
}

// New wires the full application from configuration
func New(cfg *config.Config) *Server {
	logs := gameRepo.NewMemoryRepository()
	wallets := wallet.NewService(walletRepo.NewMemoryRepository())

	return NewWith(Dependencies{
		Manager:   NewManager(wallets, logs),
		Registry:  games.DefaultRegistry(),
		Stats:     statistics.NewService(logs),
		Concierge: concierge.NewService(concierge.NewGeminiClient(cfg.GeminiAPIKey)),
		Hub:       lobby.NewHub(),
		Rng:       random.New(),
		Wallets:   wallets,
	})
}

// Dependencies are the wired services behind the HTTP surface
type Dependencies struct {
	Manager   *Manager
	Registry  *games.Registry
	Stats     *statistics.Service
	Concierge *concierge.Service
	Hub       *lobby.Hub
	Rng       random.Source
	Wallets   wallet.WalletService
}

// NewWith builds the server over explicit dependencies
func NewWith(deps Dependencies) *Server {
	s := &Server{
		app:       fiber.New(fiber.Config{DisableStartupMessage: true}),
		manager:   deps.Manager,
		registry:  deps.Registry,
		stats:     deps.Stats,
		concierge: deps.Concierge,
		hub:       deps.Hub,
		rng:       deps.Rng,
		wallets:   deps.Wallets,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api")
	api.Post("/register", s.handleRegister)

	authed := api.Group("", s.requireSession)
	authed.Get("/session", s.handleSession)
	authed.Get("/session/log", s.handleLog)
	authed.Get("/session/transactions", s.handleTransactions)

	authed.Post("/games/:id/play", s.handlePlay)

	authed.Post("/crash/start", s.handleCrashStart)
	authed.Post("/crash/tick", s.handleCrashTick)
	authed.Post("/crash/cashout", s.handleCrashCashOut)

	authed.Post("/mines/start", s.handleMinesStart)
	authed.Post("/mines/reveal", s.handleMinesReveal)
	authed.Post("/mines/cashout", s.handleMinesCashOut)

	authed.Post("/trivia/spin", s.handleTriviaSpin)
	authed.Post("/trivia/answer", s.handleTriviaAnswer)

	authed.Post("/blackjack/deal", s.handleBlackjackDeal)
	authed.Post("/blackjack/hit", s.handleBlackjackHit)
	authed.Post("/blackjack/stand", s.handleBlackjackStand)

	authed.Post("/concierge/chat", s.handleConciergeChat)
	authed.Post("/concierge/vision", s.handleConciergeVision)
	authed.Post("/concierge/write", s.handleConciergeWrite)

	admin := authed.Group("/admin", s.requireAdmin)
	admin.Get("/dashboard", s.handleDashboard)
	admin.Post("/funds", s.handleAdminFunds)

	s.app.Get("/api/lobby/history", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"events":  s.hub.History(),
			"players": s.hub.Players(),
		})
	})

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws/lobby", websocket.New(s.hub.Handler))
}

// App exposes the fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on the given address until Shutdown
func (s *Server) Listen(address string) error {
	return s.app.Listen(address)
}

// Shutdown drains connections and stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
