package entities

import "time"

// Outcome classifies a completed round in the game log
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// ClassifyOutcome applies the log convention: a round is a WIN whenever the
// payout covers the bet, so break-even pushes are recorded as WIN. Kept
// deliberately; downstream displays rely on it.
func ClassifyOutcome(bet, payout float64) Outcome {
	if payout >= bet {
		return OutcomeWin
	}
	return OutcomeLoss
}

// LogEntry is the immutable record of one completed round. Entries are
// prepended to the session log and never mutated or removed.
type LogEntry struct {
	ID         string    `json:"id"`
	User       string    `json:"user"`
	Game       string    `json:"game"`
	Bet        float64   `json:"bet"`
	Payout     float64   `json:"payout"`
	Multiplier float64   `json:"multiplier"`
	Timestamp  time.Time `json:"timestamp"`
	Outcome    Outcome   `json:"outcome"`
}
