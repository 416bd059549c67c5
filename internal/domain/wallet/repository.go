package wallet

import "context"

type Repository interface {
	Create(ctx context.Context, w *Wallet) error
	GetByWalletID(ctx context.Context, walletID string) (*Wallet, error)
	GetByUserAndLoan(ctx context.Context, userID, loanID string) (*Wallet, error)
	// ListByUserID returns the user's wallets ordered by created_at then id
	// ascending, the fixed consumption order for withdrawals.
	ListByUserID(ctx context.Context, userID string) ([]Wallet, error)
	// ListByUserIDForUpdate is ListByUserID with the rows locked for the
	// duration of the surrounding transaction.
	ListByUserIDForUpdate(ctx context.Context, userID string) ([]Wallet, error)
	// Debit subtracts amount from the wallet only when the balance covers
	// it; returns ErrInsufficientFunds otherwise.
	Debit(ctx context.Context, walletID string, amount float64) error
	Credit(ctx context.Context, walletID string, amount float64) error
	TotalByUserID(ctx context.Context, userID string) (float64, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
