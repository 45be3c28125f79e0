package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/fintechx/casino/pkg/entities"
	walletRepo "github.com/fintechx/casino/pkg/repositories/wallet"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNegativeAmount    = errors.New("amount cannot be negative")
	ErrWalletExists      = errors.New("wallet already exists")
)

// Service handles wallet business logic
type Service struct {
	repo walletRepo.Repository
}

// NewService creates a new wallet service
func NewService(repo walletRepo.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateWallet creates a wallet with an opening balance, recording the
// opening credit as a BONUS transaction (registration bonus or admin grant)
func (s *Service) CreateWallet(ctx context.Context, userID string, openingBalance float64, description string) (*entities.Wallet, error) {
	if _, err := s.repo.GetWallet(ctx, userID); err == nil {
		return nil, ErrWalletExists
	} else if !errors.Is(err, walletRepo.ErrWalletNotFound) {
		return nil, err
	}

	wallet := &entities.Wallet{
		UserID:      userID,
		Balance:     openingBalance,
		LastUpdated: time.Now(),
	}
	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return nil, err
	}

	if openingBalance > 0 {
		tx := &entities.Transaction{
			ID:           uuid.New().String(),
			UserID:       userID,
			Amount:       openingBalance,
			Type:         entities.TransactionTypeBonus,
			Description:  description,
			Timestamp:    time.Now(),
			BalanceAfter: openingBalance,
		}
		if err := s.repo.AddTransaction(ctx, tx); err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"user":    userID,
		"balance": openingBalance,
	}).Info("wallet created")

	return wallet, nil
}

// GetBalance returns the current balance for a user
func (s *Service) GetBalance(ctx context.Context, userID string) (float64, error) {
	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

// AddFunds credits a user's wallet and records the transaction
func (s *Service) AddFunds(ctx context.Context, userID string, amount float64, txType entities.TransactionType, description string) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return err
	}

	wallet.Balance += amount
	wallet.LastUpdated = time.Now()

	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"user":    userID,
		"amount":  amount,
		"type":    txType,
		"balance": wallet.Balance,
	}).Debug("wallet credited")

	return s.repo.AddTransaction(ctx, &entities.Transaction{
		ID:           uuid.New().String(),
		UserID:       userID,
		Amount:       amount,
		Type:         txType,
		Description:  description,
		Timestamp:    time.Now(),
		BalanceAfter: wallet.Balance,
	})
}

// RemoveFunds debits a user's wallet if sufficient funds exist
func (s *Service) RemoveFunds(ctx context.Context, userID string, amount float64, txType entities.TransactionType, description string) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	wallet, err := s.repo.GetWallet(ctx, userID)
	if err != nil {
		return err
	}

	if wallet.Balance < amount {
		return ErrInsufficientFunds
	}

	wallet.Balance -= amount
	wallet.LastUpdated = time.Now()

	if err := s.repo.SaveWallet(ctx, wallet); err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"user":    userID,
		"amount":  amount,
		"type":    txType,
		"balance": wallet.Balance,
	}).Debug("wallet debited")

	return s.repo.AddTransaction(ctx, &entities.Transaction{
		ID:           uuid.New().String(),
		UserID:       userID,
		Amount:       -amount,
		Type:         txType,
		Description:  description,
		Timestamp:    time.Now(),
		BalanceAfter: wallet.Balance,
	})
}

// GetTransactions returns a user's transactions, most recent first
func (s *Service) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.Transaction, error) {
	return s.repo.GetTransactions(ctx, userID, limit)
}
