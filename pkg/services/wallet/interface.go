package wallet

import (
	"context"

	"github.com/fintechx/casino/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_wallet_service
type WalletService interface {
	CreateWallet(ctx context.Context, userID string, openingBalance float64, description string) (*entities.Wallet, error)
	GetBalance(ctx context.Context, userID string) (float64, error)
	AddFunds(ctx context.Context, userID string, amount float64, txType entities.TransactionType, description string) error
	RemoveFunds(ctx context.Context, userID string, amount float64, txType entities.TransactionType, description string) error
	GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error)
}
