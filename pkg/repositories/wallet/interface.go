package wallet

import (
	"context"

	"github.com/fintechx/casino/pkg/entities"
)

// Repository defines storage operations for wallets and their transactions.
// Only an in-memory implementation exists: balances are session-scoped by
// design and are not persisted across sessions.
type Repository interface {
	// GetWallet retrieves a wallet by user ID
	GetWallet(ctx context.Context, userID string) (*entities.Wallet, error)

	// SaveWallet creates or updates a wallet
	SaveWallet(ctx context.Context, wallet *entities.Wallet) error

	// AddTransaction records a wallet transaction
	AddTransaction(ctx context.Context, transaction *entities.Transaction) error

	// GetTransactions returns a user's transactions, most recent first
	GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error)
}
