package notification

import (
	"errors"
	"time"
)

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

const (
	TypeDocumentVerified = "document_verified"
	TypeLoanApproved     = "loan_approved"
	TypeLoanRejected     = "loan_rejected"
	TypeLoanDisbursed    = "loan_disbursed"
	TypeWithdrawal       = "withdrawal_decision"
)

var ErrNotFound = errors.New("notification not found")

type Notification struct {
	ID             uint64    `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string    `gorm:"size:32;uniqueIndex" json:"notification_id"`
	UserID         string    `gorm:"size:36;index" json:"user_id"`
	Type           string    `gorm:"size:50" json:"type"`
	Message        string    `gorm:"type:text" json:"message"`
	Status         Status    `gorm:"type:enum('unread','read');default:'unread'" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
