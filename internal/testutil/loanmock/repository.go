package loanmock

import (
	"context"
	"time"

	domain "kredinou/internal/domain/loan"
	"kredinou/internal/domain/stats"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; unfilled getters fail loudly.
type Repo struct {
	CreateFn                             func(ctx context.Context, l *domain.Loan) error
	SaveFn                               func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn                        func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn               func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetOpenLoanByUserIDFn                func(ctx context.Context, userID string) (*domain.Loan, error)
	GetLatestActiveByUserIDFn            func(ctx context.Context, userID string) (*domain.Loan, error)
	ListByUserIDFn                       func(ctx context.Context, userID string, offset, limit int) ([]domain.Loan, int64, error)
	ListByStatusFn                       func(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Loan, int64, error)
	ListCompletedDisbursementsByUserIDFn func(ctx context.Context, userID string) ([]domain.Loan, error)
	CountByUserIDFn                      func(ctx context.Context, userID string) (int64, error)
	CountByStatusFn                      func(ctx context.Context, status domain.Status) (int64, error)
	CountAndTotalFn                      func(ctx context.Context) (int64, float64, error)
	SumApprovedUndisbursedFn             func(ctx context.Context) (float64, error)
	DisbursedTotalsByCurrencyFn          func(ctx context.Context) ([]stats.CurrencyTotal, error)
	DailyTotalsFn                        func(ctx context.Context, since time.Time) ([]stats.DailyTotal, error)
	DeleteByUserIDFn                     func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}
func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetOpenLoanByUserID(ctx context.Context, userID string) (*domain.Loan, error) {
	if m.GetOpenLoanByUserIDFn != nil {
		return m.GetOpenLoanByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetLatestActiveByUserID(ctx context.Context, userID string) (*domain.Loan, error) {
	if m.GetLatestActiveByUserIDFn != nil {
		return m.GetLatestActiveByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]domain.Loan, int64, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, offset, limit)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Loan, int64, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, offset, limit)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) ListCompletedDisbursementsByUserID(ctx context.Context, userID string) ([]domain.Loan, error) {
	if m.ListCompletedDisbursementsByUserIDFn != nil {
		return m.ListCompletedDisbursementsByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) CountByUserID(ctx context.Context, userID string) (int64, error) {
	if m.CountByUserIDFn != nil {
		return m.CountByUserIDFn(ctx, userID)
	}
	return 0, context.Canceled
}
func (m *Repo) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	return 0, context.Canceled
}
func (m *Repo) CountAndTotal(ctx context.Context) (int64, float64, error) {
	if m.CountAndTotalFn != nil {
		return m.CountAndTotalFn(ctx)
	}
	return 0, 0, context.Canceled
}
func (m *Repo) SumApprovedUndisbursed(ctx context.Context) (float64, error) {
	if m.SumApprovedUndisbursedFn != nil {
		return m.SumApprovedUndisbursedFn(ctx)
	}
	return 0, context.Canceled
}
func (m *Repo) DisbursedTotalsByCurrency(ctx context.Context) ([]stats.CurrencyTotal, error) {
	if m.DisbursedTotalsByCurrencyFn != nil {
		return m.DisbursedTotalsByCurrencyFn(ctx)
	}
	return nil, context.Canceled
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
