package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	notificationDomain "kredinou/internal/domain/notification"
	"kredinou/internal/testutil/notificationmock"

	"gorm.io/gorm"
)

const ownerID = "3f1b2c4d-0000-0000-0000-000000000001"

func sampleNote(id string) *notificationDomain.Notification {
	return &notificationDomain.Notification{
		NotificationID: id,
		UserID:         ownerID,
		Type:           notificationDomain.TypeLoanApproved,
		Message:        "Your loan of 5000.00 HTG was approved",
		Status:         notificationDomain.StatusUnread,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestList_MapsAndDefaultsLimit(t *testing.T) {
	var gotLimit int
	repo := &notificationmock.Repo{
		ListByUserIDFn: func(_ context.Context, userID string, limit int) ([]notificationDomain.Notification, error) {
			if userID != ownerID {
				t.Fatalf("wrong user: %s", userID)
			}
			gotLimit = limit
			return []notificationDomain.Notification{*sampleNote("n-1"), *sampleNote("n-2")}, nil
		},
	}
	uc := NewUsecase(repo)

	out, err := uc.List(context.Background(), ownerID, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLimit != defaultListLimit {
		t.Fatalf("limit = %d, want %d", gotLimit, defaultListLimit)
	}
	if len(out) != 2 {
		t.Fatalf("items: %d", len(out))
	}
	if out[0].NotificationID != "n-1" || out[0].Status != string(notificationDomain.StatusUnread) {
		t.Fatalf("dto: %+v", out[0])
	}

	// out-of-range limits also fall back
	if _, err := uc.List(context.Background(), ownerID, 5000); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLimit != defaultListLimit {
		t.Fatalf("limit = %d, want clamp to %d", gotLimit, defaultListLimit)
	}

	// an explicit in-range limit passes through
	if _, err := uc.List(context.Background(), ownerID, 10); err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotLimit != 10 {
		t.Fatalf("limit = %d, want 10", gotLimit)
	}
}

func TestMarkRead_Owner(t *testing.T) {
	marked := ""
	repo := &notificationmock.Repo{
		GetByNotificationIDFn: func(_ context.Context, id string) (*notificationDomain.Notification, error) {
			if id != "n-1" {
				return nil, gorm.ErrRecordNotFound
			}
			return sampleNote("n-1"), nil
		},
		MarkReadFn: func(_ context.Context, id string) error {
			marked = id
			return nil
		},
	}
	uc := NewUsecase(repo)

	if err := uc.MarkRead(context.Background(), ownerID, "n-1"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if marked != "n-1" {
		t.Fatalf("MarkRead not forwarded: %q", marked)
	}
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := &notificationmock.Repo{
		GetByNotificationIDFn: func(_ context.Context, _ string) (*notificationDomain.Notification, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)

	if err := uc.MarkRead(context.Background(), ownerID, "missing"); !errors.Is(err, notificationDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMarkRead_ForeignNotificationHidden(t *testing.T) {
	repo := &notificationmock.Repo{
		GetByNotificationIDFn: func(_ context.Context, _ string) (*notificationDomain.Notification, error) {
			n := sampleNote("n-1")
			n.UserID = "someone-else"
			return n, nil
		},
		MarkReadFn: func(_ context.Context, _ string) error {
			t.Fatalf("MarkRead must not run for a foreign notification")
			return nil
		},
	}
	uc := NewUsecase(repo)

	if err := uc.MarkRead(context.Background(), ownerID, "n-1"); !errors.Is(err, notificationDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
