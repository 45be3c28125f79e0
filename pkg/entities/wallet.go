package entities

import (
	"time"
)

// Wallet represents a player's fake-currency (FCT) inventory
type Wallet struct {
	UserID      string    // Session user name
	Balance     float64   // Current balance in FCT
	LastUpdated time.Time // When the wallet was last updated
}

// TransactionType represents the type of wallet transaction
type TransactionType string

const (
	TransactionTypeBet        TransactionType = "BET"
	TransactionTypePayout     TransactionType = "PAYOUT"
	TransactionTypeBonus      TransactionType = "BONUS"
	TransactionTypeAdjustment TransactionType = "ADJUSTMENT"
)

// Transaction represents a single wallet transaction
type Transaction struct {
	ID           string          // Unique identifier
	UserID       string          // User associated with the transaction
	Amount       float64         // Amount (positive for additions, negative for subtractions)
	Type         TransactionType // Type of transaction
	ReferenceID  string          // Optional reference (e.g., log entry ID for payouts)
	Description  string          // Human-readable description
	Timestamp    time.Time       // When the transaction occurred
	BalanceAfter float64         // Balance after this transaction
}
