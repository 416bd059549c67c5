package repayment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusVerified            Status = "verified"
	StatusRejected            Status = "rejected"
)

var (
	ErrNotFound           = errors.New("repayment not found")
	ErrNotPending         = errors.New("repayment is not pending verification")
	ErrLoanNotRepayable   = errors.New("loan is not open for repayment")
	ErrExceedsOutstanding = errors.New("amount exceeds outstanding balance")
)

type Repayment struct {
	ID              uint64         `gorm:"primaryKey;column:id" json:"-"`
	RepaymentID     string         `gorm:"size:32;uniqueIndex:ux_repayments_repayment_id_active" json:"repayment_id"`
	LoanID          string         `gorm:"size:32;index:idx_repayments_loan" json:"loan_id"`
	UserID          string         `gorm:"size:36;index:idx_repayments_user" json:"user_id"`
	Amount          float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Method          string         `gorm:"size:20" json:"method"`
	Reference       string         `gorm:"size:100" json:"reference"`
	ProofURL        string         `gorm:"type:text" json:"proof_url"`
	Status          Status         `gorm:"type:enum('pending_verification','verified','rejected');default:'pending_verification'" json:"status"`
	RejectionReason string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	VerifiedBy      string         `gorm:"size:32" json:"-"`
	VerifiedAt      *time.Time     `json:"verified_at,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Repayment) TableName() string { return "repayments" }
