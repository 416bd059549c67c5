package walletmock

import (
	"context"

	domain "kredinou/internal/domain/wallet"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, w *domain.Wallet) error
	GetByWalletIDFn         func(ctx context.Context, walletID string) (*domain.Wallet, error)
	GetByUserAndLoanFn      func(ctx context.Context, userID, loanID string) (*domain.Wallet, error)
	ListByUserIDFn          func(ctx context.Context, userID string) ([]domain.Wallet, error)
	ListByUserIDForUpdateFn func(ctx context.Context, userID string) ([]domain.Wallet, error)
	DebitFn                 func(ctx context.Context, walletID string, amount float64) error
	CreditFn                func(ctx context.Context, walletID string, amount float64) error
	TotalByUserIDFn         func(ctx context.Context, userID string) (float64, error)
	DeleteByUserIDFn        func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Wallet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}
func (m *Repo) GetByWalletID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	if m.GetByWalletIDFn != nil {
		return m.GetByWalletIDFn(ctx, walletID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByUserAndLoan(ctx context.Context, userID, loanID string) (*domain.Wallet, error) {
	if m.GetByUserAndLoanFn != nil {
		return m.GetByUserAndLoanFn(ctx, userID, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Wallet, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserIDForUpdate(ctx context.Context, userID string) ([]domain.Wallet, error) {
	if m.ListByUserIDForUpdateFn != nil {
		return m.ListByUserIDForUpdateFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) Debit(ctx context.Context, walletID string, amount float64) error {
	if m.DebitFn != nil {
		return m.DebitFn(ctx, walletID, amount)
	}
	return nil
}
func (m *Repo) Credit(ctx context.Context, walletID string, amount float64) error {
	if m.CreditFn != nil {
		return m.CreditFn(ctx, walletID, amount)
	}
	return nil
}
func (m *Repo) TotalByUserID(ctx context.Context, userID string) (float64, error) {
	if m.TotalByUserIDFn != nil {
		return m.TotalByUserIDFn(ctx, userID)
	}
	return 0, context.Canceled
}
func (m *Repo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFn != nil {
		return m.DeleteByUserIDFn(ctx, userID)
	}
	return nil
}
