package mysql

import (
	"context"

	notificationDomain "kredinou/internal/domain/notification"

	"gorm.io/gorm"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notificationDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) GetByNotificationID(ctx context.Context, notificationID string) (*notificationDomain.Notification, error) {
	var out notificationDomain.Notification
	res := r.db.WithContext(ctx).Where("notification_id = ?", notificationID).First(&out)
	return &out, res.Error
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]notificationDomain.Notification, error) {
	var out []notificationDomain.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// MarkRead is idempotent; callers resolve ownership and existence first.
func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	return r.db.WithContext(ctx).Model(&notificationDomain.Notification{}).
		Where("notification_id = ?", notificationID).
		Update("status", notificationDomain.StatusRead).Error
}

func (r *NotificationRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&notificationDomain.Notification{}).Error
}
