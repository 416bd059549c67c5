package notificationmock

import (
	"context"

	domain "kredinou/internal/domain/notification"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, n *domain.Notification) error
	GetByNotificationIDFn func(ctx context.Context, notificationID string) (*domain.Notification, error)
	ListByUserIDFn        func(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
	MarkReadFn            func(ctx context.Context, notificationID string) error
	DeleteByUserIDFn      func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, n *domain.Notification) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, n)
	}
	return nil
}
func (m *Repo) GetByNotificationID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	if m.GetByNotificationIDFn != nil {
		return m.GetByNotificationIDFn(ctx, notificationID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListByUserID(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID, limit)
	}
	return nil, context.Canceled
}
func (m *Repo) MarkRead(ctx context.Context, notificationID string) error {
	if m.MarkReadFn != nil {
		return m.MarkReadFn(ctx, notificationID)
	}
	return nil
}
func (m *Repo) DeleteByUserID(ctx context.Context, userID string) error {
	if m.DeleteByUserIDFn != nil {
		return m.DeleteByUserIDFn(ctx, userID)
	}
	return nil
}
