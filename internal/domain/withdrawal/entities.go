package withdrawal

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

const (
	ServiceMonCash = "moncash"
	ServiceNatCash = "natcash"
)

var (
	ErrNotFound   = errors.New("withdrawal not found")
	ErrNotPending = errors.New("withdrawal is not pending")
)

type Withdrawal struct {
	ID            uint64     `gorm:"primaryKey;column:id" json:"-"`
	WithdrawalID  string     `gorm:"size:32;uniqueIndex" json:"withdrawal_id"`
	UserID        string     `gorm:"size:36;index:idx_withdrawals_user" json:"user_id"`
	Amount        float64    `gorm:"type:decimal(18,2)" json:"amount"`
	Service       string     `gorm:"size:20" json:"service"`
	AccountName   string     `gorm:"size:100" json:"account_name"`
	AccountNumber string     `gorm:"size:50" json:"account_number"`
	Status        Status     `gorm:"type:enum('pending','approved','rejected');default:'pending'" json:"status"`
	AdminNotes    string     `gorm:"type:text" json:"admin_notes,omitempty"`
	DecidedBy     string     `gorm:"size:32" json:"-"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Withdrawal) TableName() string { return "withdrawals" }

// Deduction records how much of a withdrawal came out of which wallet.
// Rejections credit these exact amounts back, so the rows are written once
// at request time and never recomputed.
type Deduction struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"-"`
	WithdrawalID string    `gorm:"size:32;index" json:"withdrawal_id"`
	WalletID     string    `gorm:"size:32;index" json:"wallet_id"`
	Amount       float64   `gorm:"type:decimal(18,2)" json:"amount"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Deduction) TableName() string { return "withdrawal_deductions" }
