package wallet

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fintechx/casino/pkg/entities"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
)

// MemoryRepository implements Repository using in-memory storage
type MemoryRepository struct {
	wallets      map[string]*entities.Wallet
	transactions map[string][]*entities.Transaction
	mu           sync.RWMutex
}

// NewMemoryRepository creates a new in-memory wallet repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		wallets:      make(map[string]*entities.Wallet),
		transactions: make(map[string][]*entities.Transaction),
	}
}

// GetWallet retrieves a wallet by user ID
func (r *MemoryRepository) GetWallet(ctx context.Context, userID string) (*entities.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wallet, exists := r.wallets[userID]
	if !exists {
		return nil, ErrWalletNotFound
	}

	// Return a copy to prevent concurrent modification
	walletCopy := *wallet
	return &walletCopy, nil
}

// SaveWallet creates or updates a wallet
func (r *MemoryRepository) SaveWallet(ctx context.Context, wallet *entities.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	wallet.LastUpdated = time.Now()

	// Store a copy to prevent concurrent modification
	walletCopy := *wallet
	r.wallets[wallet.UserID] = &walletCopy

	return nil
}

// AddTransaction records a wallet transaction, most recent first
func (r *MemoryRepository) AddTransaction(ctx context.Context, transaction *entities.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	txCopy := *transaction
	r.transactions[transaction.UserID] = append([]*entities.Transaction{&txCopy}, r.transactions[transaction.UserID]...)

	return nil
}

// GetTransactions returns a user's transactions, most recent first
func (r *MemoryRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	txs := r.transactions[userID]
	if limit > 0 && limit < len(txs) {
		txs = txs[:limit]
	}

	result := make([]*entities.Transaction, len(txs))
	for i, tx := range txs {
		txCopy := *tx
		result[i] = &txCopy
	}
	return result, nil
}
