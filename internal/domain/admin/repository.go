package admin

import "context"

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	Save(ctx context.Context, a *Admin) error
	GetByAdminID(ctx context.Context, adminID string) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	Count(ctx context.Context) (int64, error)

	LogAction(ctx context.Context, act *Action) error
	ListActionsByTarget(ctx context.Context, targetID string, limit int) ([]Action, error)
}
