package notification

import (
	"context"
	"errors"
	"time"

	notificationDomain "kredinou/internal/domain/notification"

	"gorm.io/gorm"
)

const defaultListLimit = 50

type Usecase struct{ repo notificationDomain.Repository }

func NewUsecase(r notificationDomain.Repository) *Usecase { return &Usecase{repo: r} }

type NotificationDTO struct {
	NotificationID string    `json:"notification_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *Usecase) List(ctx context.Context, userID string, limit int) ([]NotificationDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultListLimit
	}
	ns, err := u.repo.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]NotificationDTO, 0, len(ns))
	for _, n := range ns {
		out = append(out, NotificationDTO{
			NotificationID: n.NotificationID,
			Type:           n.Type,
			Message:        n.Message,
			Status:         string(n.Status),
			CreatedAt:      n.CreatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) MarkRead(ctx context.Context, userID, notificationID string) error {
	n, err := u.repo.GetByNotificationID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notificationDomain.ErrNotFound
		}
		return err
	}
	if n.UserID != userID {
		return notificationDomain.ErrNotFound
	}
	return u.repo.MarkRead(ctx, notificationID)
}
