package withdrawal

import (
	"context"
	"time"

	"kredinou/internal/domain/stats"
)

type Repository interface {
	Create(ctx context.Context, w *Withdrawal) error
	Save(ctx context.Context, w *Withdrawal) error
	GetByWithdrawalID(ctx context.Context, withdrawalID string) (*Withdrawal, error)
	GetByWithdrawalIDForUpdate(ctx context.Context, withdrawalID string) (*Withdrawal, error)
	ListByUserID(ctx context.Context, userID string) ([]Withdrawal, error)
	ListByStatus(ctx context.Context, status Status, offset, limit int) ([]Withdrawal, int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	SumAmountByStatus(ctx context.Context, status Status) (float64, error)
	AddDeductions(ctx context.Context, ds []Deduction) error
	ListDeductions(ctx context.Context, withdrawalID string) ([]Deduction, error)
	DailyTotals(ctx context.Context, since time.Time) ([]stats.DailyTotal, error)
	DeleteByUserID(ctx context.Context, userID string) error
}
