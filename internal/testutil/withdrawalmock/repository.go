package withdrawalmock

import (
	"context"
	"time"

	"kredinou/internal/domain/stats"
	domain "kredinou/internal/domain/withdrawal"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                     func(ctx context.Context, w *domain.Withdrawal) error
	SaveFn                       func(ctx context.Context, w *domain.Withdrawal) error
	GetByWithdrawalIDFn          func(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
	GetByWithdrawalIDForUpdateFn func(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error)
	ListByUserIDFn               func(ctx context.Context, userID string) ([]domain.Withdrawal, error)
	ListByStatusFn               func(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Withdrawal, int64, error)
	CountByStatusFn              func(ctx context.Context, status domain.Status) (int64, error)
	SumAmountByStatusFn          func(ctx context.Context, status domain.Status) (float64, error)
	AddDeductionsFn              func(ctx context.Context, ds []domain.Deduction) error
	ListDeductionsFn             func(ctx context.Context, withdrawalID string) ([]domain.Deduction, error)
	DailyTotalsFn                func(ctx context.Context, since time.Time) ([]stats.DailyTotal, error)
	DeleteByUserIDFn             func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, w *domain.Withdrawal) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, w)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, w *domain.Withdrawal) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, w)
	}
	return nil
}
func (m *Repo) GetByWithdrawalID(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	if m.GetByWithdrawalIDFn != nil {
		return m.GetByWithdrawalIDFn(ctx, withdrawalID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByWithdrawalIDForUpdate(ctx context.Context, withdrawalID string) (*domain.Withdrawal, error) {
	if m.GetByWithdrawalIDForUpdateFn != nil {
		return m.GetByWithdrawalIDForUpdateFn(ctx, withdrawalID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Withdrawal, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByStatus(ctx context.Context, status domain.Status, offset, limit int) ([]domain.Withdrawal, int64, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, offset, limit)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) CountByStatus(ctx context.Context, status domain.Status) (int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	return 0, context.Canceled
}
func (m *Repo) SumAmountByStatus(ctx context.Context, status domain.Status) (float64, error) {
	if m.SumAmountByStatusFn != nil {
		return m.SumAmountByStatusFn(ctx, status)
	}
	return 0, context.Canceled
}
func (m *Repo) AddDeductions(ctx context.Context, ds []domain.Deduction) error {
	if m.AddDeductionsFn != nil {
		return m.AddDeductionsFn(ctx, ds)
	}
	return nil
}
func (m *Repo) ListDeductions(ctx context.Context, withdrawalID string) ([]domain.Deduction, error) {
	if m.ListDeductionsFn != nil {
		return m.ListDeductionsFn(ctx, withdrawalID)
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
