package repaymentmock

import (
	"context"
	"time"

	domain "kredinou/internal/domain/repayment"
	"kredinou/internal/domain/stats"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                    func(ctx context.Context, r *domain.Repayment) error
	SaveFn                      func(ctx context.Context, r *domain.Repayment) error
	GetByRepaymentIDFn          func(ctx context.Context, repaymentID string) (*domain.Repayment, error)
	GetByRepaymentIDForUpdateFn func(ctx context.Context, repaymentID string) (*domain.Repayment, error)
	ListByLoanIDFn              func(ctx context.Context, loanID string) ([]domain.Repayment, error)
	ListByUserIDFn              func(ctx context.Context, userID string, offset, limit int) ([]domain.Repayment, int64, error)
	ListByStatusFn              func(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Repayment, int64, error)
	SumVerifiedByLoanIDFn       func(ctx context.Context, loanID string) (float64, error)
	CountPendingByLoanIDFn      func(ctx context.Context, loanID string) (int64, error)
	TotalVerifiedFn             func(ctx context.Context) (float64, error)
	DailyTotalsFn               func(ctx context.Context, since time.Time) ([]stats.DailyTotal, error)
	DeleteByUserIDFn            func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, r *domain.Repayment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, r *domain.Repayment) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *Repo) GetByRepaymentID(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
	if m.GetByRepaymentIDFn != nil {
		return m.GetByRepaymentIDFn(ctx, repaymentID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByRepaymentIDForUpdate(ctx context.Context, repaymentID string) (*domain.Repayment, error) {
	if m.GetByRepaymentIDForUpdateFn != nil {
		return m.GetByRepaymentIDForUpdateFn(ctx, repaymentID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByLoanID(ctx context.Context, loanID string) ([]domain.Repayment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]domain.Repayment, int64, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, offset, limit)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Repayment, int64, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, offset, limit)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) SumVerifiedByLoanID(ctx context.Context, loanID string) (float64, error) {
	if m.SumVerifiedByLoanIDFn != nil {
		return m.SumVerifiedByLoanIDFn(ctx, loanID)
	}
	return 0, context.Canceled
}
func (m *Repo) CountPendingByLoanID(ctx context.Context, loanID string) (int64, error) {
	if m.CountPendingByLoanIDFn != nil {
		return m.CountPendingByLoanIDFn(ctx, loanID)
	}
	return 0, context.Canceled
}
func (m *Repo) TotalVerified(ctx context.Context) (float64, error) {
	if m.TotalVerifiedFn != nil {
		return m.TotalVerifiedFn(ctx)
	}
	return 0, context.Canceled
}
func (m *Repo) DailyTotals(ctx context.Context, since time.Time) ([]stats.DailyTotal, error) {
	if m.DailyTotalsFn != nil {
		return m.DailyTotalsFn(ctx, since)
	}
	return nil, context.Canceled
}
func (m *Repo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFn != nil {
		return m.DeleteByUserIDFn(ctx, userID)
	}
	return nil
}
