package repayment

import (
	"context"
	"time"

	"kredinou/internal/domain/stats"
)

type Repository interface {
	Create(ctx context.Context, r *Repayment) error
	Save(ctx context.Context, r *Repayment) error
	GetByRepaymentID(ctx context.Context, repaymentID string) (*Repayment, error)
	GetByRepaymentIDForUpdate(ctx context.Context, repaymentID string) (*Repayment, error)
	ListByLoanID(ctx context.Context, loanID string) ([]Repayment, error)
	ListByUserID(ctx context.Context, userID string, offset, limit int) ([]Repayment, int64, error)
	ListByStatus(ctx context.Context, status Status, offset, limit int) ([]Repayment, int64, error)
	SumVerifiedByLoanID(ctx context.Context, loanID string) (float64, error)
	CountPendingByLoanID(ctx context.Context, loanID string) (int64, error)
	TotalVerified(ctx context.Context) (float64, error)
	DailyTotals(ctx context.Context, since time.Time) ([]stats.DailyTotal, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
