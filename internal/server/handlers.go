package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/entities"
	"github.com/fintechx/casino/pkg/services/concierge"
	"github.com/fintechx/casino/pkg/services/games"
	"github.com/fintechx/casino/pkg/services/session"
)

const defaultLogLimit = 50

// requireSession resolves the session token header and stashes the player
func (s *Server) requireSession(c *fiber.Ctx) error {
	ps, err := s.manager.Get(c.Get("X-Session-Token"))
	if err != nil {
		return fail(c, err)
	}
	c.Locals("player", ps)
	return c.Next()
}

func (s *Server) requireAdmin(c *fiber.Ctx) error {
	if !player(c).Session.Profile().Admin {
		return fail(c, types.NewGameError(types.ErrPermissionDenied, "admin access required"))
	}
	return c.Next()
}

func player(c *fiber.Ctx) *PlayerSession {
	return c.Locals("player").(*PlayerSession)
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, types.NewGameError(types.ErrInvalidSelection, "invalid request body"))
	}

	token, ps, err := s.manager.Register(c.UserContext(), strings.TrimSpace(req.Name))
	if err != nil {
		return fail(c, err)
	}

	// settled wins feed the lobby banner
	ps.Session.OnSettled(func(entry *entities.LogEntry) {
		if entry.Game != session.SystemGame && entry.Outcome == entities.OutcomeWin && entry.Payout > 0 {
			s.hub.PublishWin(entry.User, entry.Game, entry.Payout)
		}
	})

	balance, err := ps.Session.Balance(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":   token,
		"profile": ps.Session.Profile(),
		"balance": balance,
	})
}

func (s *Server) handleSession(c *fiber.Ctx) error {
	ps := player(c)

	balance, err := ps.Session.Balance(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"profile": ps.Session.Profile(),
		"balance": balance,
		"inRound": ps.Session.InRound(),
		"badges":  ps.Trivia.Badges(),
	})
}

func (s *Server) handleLog(c *fiber.Ctx) error {
	ps := player(c)

	entries, err := ps.Session.Log(c.UserContext(), c.QueryInt("limit", defaultLogLimit))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"log": entries})
}

func (s *Server) handleTransactions(c *fiber.Ctx) error {
	ps := player(c)

	transactions, err := ps.Session.Transactions(c.UserContext(), c.QueryInt("limit", defaultLogLimit))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"transactions": transactions})
}

// handlePlay runs one round of a single-shot game: resolve the outcome,
// debit the stake, settle. The generated outcome is discarded when the
// bet is rejected, so a rejection never moves money or logs a round.
func (s *Server) handlePlay(c *fiber.Ctx) error {
	ps := player(c)

	var req struct {
		Stake  float64      `json:"stake"`
		Params games.Params `json:"params"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, types.NewGameError(types.ErrInvalidSelection, "invalid request body"))
	}

	game, err := s.registry.Get(strings.ToUpper(c.Params("id")))
	if err != nil {
		return fail(c, err)
	}

	outcome, err := game.Play(s.rng, req.Stake, req.Params)
	if err != nil {
		return fail(c, err)
	}

	if err := ps.Session.PlaceBet(c.UserContext(), game.Name(), req.Stake); err != nil {
		return fail(c, err)
	}
	entry, balance, err := s.settle(c, ps, outcome)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"outcome": outcome,
		"entry":   entry,
		"balance": balance,
	})
}

// settle closes the outstanding round and reads the resulting balance
func (s *Server) settle(c *fiber.Ctx, ps *PlayerSession, outcome *games.Outcome) (*entities.LogEntry, float64, error) {
	entry, err := ps.Session.Settle(c.UserContext(), outcome.Payout, outcome.Multiplier)
	if err != nil {
		return nil, 0, err
	}
	balance, err := ps.Session.Balance(c.UserContext())
	if err != nil {
		return nil, 0, err
	}
	return entry, balance, nil
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	dashboard, err := s.stats.GetDashboard(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dashboard)
}

// handleAdminFunds adjusts the operator's own balance (the original's
// inject/withdraw buttons). Positive credits, negative debits.
func (s *Server) handleAdminFunds(c *fiber.Ctx) error {
	ps := player(c)

	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil || req.Amount == 0 {
		return fail(c, types.NewGameError(types.ErrInvalidSelection, "non-zero amount is required"))
	}

	user := ps.Session.Profile().Name
	var err error
	if req.Amount > 0 {
		err = s.wallets.AddFunds(c.UserContext(), user, req.Amount, entities.TransactionTypeAdjustment, "operator adjustment")
	} else {
		err = s.wallets.RemoveFunds(c.UserContext(), user, -req.Amount, entities.TransactionTypeAdjustment, "operator adjustment")
	}
	if err != nil {
		return fail(c, types.WrapError(types.ErrInvalidSelection, "adjustment rejected", err))
	}

	balance, err := ps.Session.Balance(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"balance": balance})
}

func (s *Server) handleConciergeChat(c *fiber.Ctx) error {
	var req struct {
		History []concierge.Message `json:"history"`
		Message string              `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, types.NewGameError(types.ErrInvalidSelection, "invalid request body"))
	}

	reply, err := s.concierge.Chat(c.UserContext(), req.History, req.Message)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"reply": reply})
}

func (s *Server) handleConciergeVision(c *fiber.Ctx) error {
	var req struct {
		Data     string `json:"data"`
		MimeType string `json:"mimeType"`
		Prompt   string `json:"prompt"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, types.NewGameError(types.ErrInvalidSelection, "invalid request body"))
	}

	result, err := s.concierge.AnalyzeImage(c.UserContext(), req.Data, req.MimeType, req.Prompt)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"result": result})
}

func (s *Server) handleConciergeWrite(c *fiber.Ctx) error {
	var req struct {
		Prompt string           `json:"prompt"`
		Format concierge.Format `json:"format"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fail(c, types.NewGameError(types.ErrInvalidSelection, "invalid request body"))
	}

	text, err := s.concierge.CreativeWriting(c.UserContext(), req.Prompt, req.Format)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"text": text})
}
