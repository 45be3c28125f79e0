package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fintechx/casino/internal/types"
	"github.com/fintechx/casino/pkg/services/blackjack"
	"github.com/fintechx/casino/pkg/services/games"
)

// Multi-step game endpoints. The stake is debited on start; the round
// object lives on the player session until cash-out, resolution or the
// final settle. The session's one-outstanding-round rule keeps a second
// start from double-debiting.

type stakeRequest struct {
	Stake float64 `json:"stake"`
}

func parseStake(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return types.NewGameError(types.ErrInvalidSelection, "invalid request body")
	}
	return nil
}

func (s *Server) handleCrashStart(c *fiber.Ctx) error {
	ps := player(c)

	var req stakeRequest
	if err := parseStake(c, &req); err != nil {
		return fail(c, err)
	}
	if err := ps.Session.PlaceBet(c.UserContext(), "CRASH", req.Stake); err != nil {
		return fail(c, err)
	}

	ps.mu.Lock()
	ps.crash = games.NewCrashRound(s.rng, req.Stake)
	ps.mu.Unlock()

	return c.JSON(fiber.Map{"multiplier": 1.0})
}

func (s *Server) handleCrashTick(c *fiber.Ctx) error {
	ps := player(c)

	ps.mu.Lock()
	round := ps.crash
	ps.mu.Unlock()
	if round == nil {
		return fail(c, types.NewGameError(types.ErrNoActiveRound, "no crash round in progress"))
	}

	multiplier, crashed := round.Tick()
	if !crashed {
		return c.JSON(fiber.Map{"multiplier": multiplier, "crashed": false})
	}

	outcome, err := round.Resolve()
	if err != nil {
		return fail(c, err)
	}
	ps.mu.Lock()
	ps.crash = nil
	ps.mu.Unlock()

	entry, balance, err := s.settle(c, ps, outcome)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"multiplier": multiplier,
		"crashed":    true,
		"crashPoint": round.CrashPoint(),
		"entry":      entry,
		"balance":    balance,
	})
}

func (s *Server) handleCrashCashOut(c *fiber.Ctx) error {
	ps := player(c)

	ps.mu.Lock()
	round := ps.crash
	ps.mu.Unlock()
	if round == nil {
		return fail(c, types.NewGameError(types.ErrNoActiveRound, "no crash round in progress"))
	}

	outcome, err := round.CashOut()
	if err != nil {
		return fail(c, err)
	}
	ps.mu.Lock()
	ps.crash = nil
	ps.mu.Unlock()

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

func (s *Server) handleMinesStart(c *fiber.Ctx) error {
	ps := player(c)

	var req struct {
		Stake float64 `json:"stake"`
		Mines int     `json:"mines"`
	}
	if err := parseStake(c, &req); err != nil {
		return fail(c, err)
	}

	round, err := games.NewMinesRound(s.rng, req.Stake, req.Mines)
	if err != nil {
		return fail(c, err)
	}
	if err := ps.Session.PlaceBet(c.UserContext(), "MINES", req.Stake); err != nil {
		return fail(c, err)
	}

	ps.mu.Lock()
	ps.mines = round
	ps.mu.Unlock()

	return c.JSON(fiber.Map{"cells": 25, "mines": req.Mines})
}

func (s *Server) handleMinesReveal(c *fiber.Ctx) error {
	ps := player(c)

	var req struct {
		Cell int `json:"cell"`
	}
	if err := parseStake(c, &req); err != nil {
		return fail(c, err)
	}

	ps.mu.Lock()
	round := ps.mines
	ps.mu.Unlock()
	if round == nil {
		return fail(c, types.NewGameError(types.ErrNoActiveRound, "no mines round in progress"))
	}

	hitMine, multiplier, err := round.Reveal(req.Cell)
	if err != nil {
		return fail(c, err)
	}
	if !hitMine {
		return c.JSON(fiber.Map{
			"hitMine":     false,
			"multiplier":  multiplier,
			"safeReveals": round.SafeReveals(),
		})
	}

	outcome, err := round.Resolve()
	if err != nil {
		return fail(c, err)
	}
	ps.mu.Lock()
	ps.mines = nil
	ps.mu.Unlock()

	entry, balance, err := s.settle(c, ps, outcome)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"hitMine": true,
		"outcome": outcome,
		"entry":   entry,
		"balance": balance,
	})
}

func (s *Server) handleMinesCashOut(c *fiber.Ctx) error {
	ps := player(c)

	ps.mu.Lock()
	round := ps.mines
	ps.mu.Unlock()
	if round == nil {
		return fail(c, types.NewGameError(types.ErrNoActiveRound, "no mines round in progress"))
	}

	outcome, err := round.CashOut()
	if err != nil {
		return fail(c, err)
	}
	ps.mu.Lock()
	ps.mines = nil
	ps.mu.Unlock()

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

func (s *Server) handleTriviaSpin(c *fiber.Ctx) error {
	ps := player(c)

	var req stakeRequest
	if err := parseStake(c, &req); err != nil {
		return fail(c, err)
	}
	if err := ps.Session.PlaceBet(c.UserContext(), "TRIVIA", req.Stake); err != nil {
		return fail(c, err)
	}

	round := ps.Trivia.Spin(s.rng, req.Stake)
	ps.mu.Lock()
	ps.triviaRound = round
	ps.mu.Unlock()

	question := round.Question()
	return c.JSON(fiber.Map{
		"category": round.Category(),
		"question": fiber.Map{
			"prompt":  question.Prompt,
			"options": question.Options,
		},
		"rotation": round.Rotation(),
	})
}

func (s *Server) handleTriviaAnswer(c *fiber.Ctx) error {
	ps := player(c)

	var req struct {
		Option int `json:"option"`
	}
	if err := parseStake(c, &req); err != nil {
		return fail(c, err)
	}

	ps.mu.Lock()
	round := ps.triviaRound
	ps.mu.Unlock()
	if round == nil {
		return fail(c, types.NewGameError(types.ErrNoActiveRound, "no trivia round in progress"))
	}

	outcome, err := ps.Trivia.Answer(round, req.Option)
	if err != nil {
		return fail(c, err)
	}
	ps.mu.Lock()
	ps.triviaRound = nil
	ps.mu.Unlock()

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

func (s *Server) handleBlackjackDeal(c *fiber.Ctx) error {
	ps := player(c)

	var req stakeRequest
	if err := parseStake(c, &req); err != nil {
		return fail(c, err)
	}
	if err := ps.Session.PlaceBet(c.UserContext(), "BLACKJACK", req.Stake); err != nil {
		return fail(c, err)
	}

	round := blackjack.NewRound(s.rng, req.Stake)
	ps.mu.Lock()
	ps.blackjack = round
	ps.mu.Unlock()

	return s.blackjackResponse(c, ps, round)
}

func (s *Server) handleBlackjackHit(c *fiber.Ctx) error {
	return s.blackjackAction(c, func(round *blackjack.Round) error {
		return round.Hit()
	})
}

func (s *Server) handleBlackjackStand(c *fiber.Ctx) error {
	return s.blackjackAction(c, func(round *blackjack.Round) error {
		return round.Stand()
	})
}

func (s *Server) blackjackAction(c *fiber.Ctx, action func(*blackjack.Round) error) error {
	ps := player(c)

	ps.mu.Lock()
	round := ps.blackjack
	ps.mu.Unlock()
	if round == nil {
		return fail(c, types.NewGameError(types.ErrNoActiveRound, "no blackjack round in progress"))
	}

	if err := action(round); err != nil {
		return fail(c, err)
	}
	return s.blackjackResponse(c, ps, round)
}

// blackjackResponse renders the table; a finished round settles first
func (s *Server) blackjackResponse(c *fiber.Ctx, ps *PlayerSession, round *blackjack.Round) error {
	view := fiber.Map{
		"state":  round.State(),
		"seats":  round.Seats(),
		"dealer": round.Dealer(),
	}

	if round.State() != blackjack.StateEnded {
		return c.JSON(view)
	}

	outcome, err := round.Outcome()
	if err != nil {
		return fail(c, err)
	}
	ps.mu.Lock()
	ps.blackjack = nil
	ps.mu.Unlock()

	entry, balance, err := s.settle(c, ps, outcome)
	if err != nil {
		return fail(c, err)
	}
	view["outcome"] = outcome
	view["entry"] = entry
	view["balance"] = balance
	return c.JSON(view)
}
