package loan

import (
	"context"
	"time"

	"kredinou/internal/domain/stats"
)

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	// GetOpenLoanByUserID returns the newest loan still occupying the
	// borrower's single-loan slot (pending, approved, disbursed, overdue).
	GetOpenLoanByUserID(ctx context.Context, userID string) (*Loan, error)
	// GetLatestActiveByUserID returns the newest approved or disbursed loan.
	GetLatestActiveByUserID(ctx context.Context, userID string) (*Loan, error)
	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]Loan, int64, error)
	ListByStatus(ctx context.Context, status Status, offset, limit int) ([]Loan, int64, error)
	// ListCompletedDisbursementsByUserID returns every loan of the user whose
	// payout has been executed, oldest first.
	ListCompletedDisbursementsByUserID(ctx context.Context, userID string) ([]Loan, error)
	CountByUserID(ctx context.Context, userID string) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountAndTotal(ctx context.Context) (int64, float64, error)
	SumApprovedUndisbursed(ctx context.Context) (float64, error)
	DisbursedTotalsByCurrency(ctx context.Context) ([]stats.CurrencyTotal, error)
	DailyTotals(ctx context.Context, since time.Time) ([]stats.DailyTotal, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
