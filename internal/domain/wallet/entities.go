package wallet

import (
	"errors"
	"time"
)

var (
	ErrNotFound          = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// Wallet holds the disbursed funds of a single loan. One row per
// (user, loan) pair; the balance starts at the loan amount and only
// moves through withdrawal debits and rejection refunds.
type Wallet struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"-"`
	WalletID  string    `gorm:"size:32;uniqueIndex" json:"wallet_id"`
	UserID    string    `gorm:"size:36;index:idx_wallets_user;uniqueIndex:ux_wallets_user_loan" json:"user_id"`
	LoanID    string    `gorm:"size:32;uniqueIndex:ux_wallets_user_loan" json:"loan_id"`
	Balance   float64   `gorm:"type:decimal(18,2)" json:"balance"`
	Currency  string    `gorm:"size:8;default:'HTG'" json:"currency"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }
