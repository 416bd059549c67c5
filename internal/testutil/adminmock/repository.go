package adminmock

import (
	"context"

	domain "kredinou/internal/domain/admin"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, a *domain.Admin) error
	SaveFn                func(ctx context.Context, a *domain.Admin) error
	GetByAdminIDFn        func(ctx context.Context, adminID string) (*domain.Admin, error)
	GetByEmailFn          func(ctx context.Context, email string) (*domain.Admin, error)
	CountFn               func(ctx context.Context) (int64, error)
	LogActionFn           func(ctx context.Context, act *domain.Action) error
	ListActionsByTargetFn func(ctx context.Context, targetID string, limit int) ([]domain.Action, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Admin) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, a *domain.Admin) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
func (m *Repo) GetByAdminID(ctx context.Context, adminID string) (*domain.Admin, error) {
	if m.GetByAdminIDFn != nil {
		return m.GetByAdminIDFn(ctx, adminID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, context.Canceled
}
func (m *Repo) LogAction(ctx context.Context, act *domain.Action) error {
	if m.LogActionFn != nil {
		return m.LogActionFn(ctx, act)
	}
	return nil
}
func (m *Repo) ListActionsByTarget(ctx context.Context, targetID string, limit int) ([]domain.Action, error) {
	if m.ListActionsByTargetFn != nil {
		return m.ListActionsByTargetFn(ctx, targetID, limit)
	}
	return nil, context.Canceled
}
