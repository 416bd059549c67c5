package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusDisbursed Status = "disbursed"
	StatusRepaid    Status = "repaid"
	StatusOverdue   Status = "overdue"
)

// DisbursementCompleted marks a loan whose payout has been executed.
// Loans carry an empty disbursement status until then.
const DisbursementCompleted = "completed"

const (
	MethodNatCash = "natcash"
	MethodMonCash = "moncash"
	MethodQRCode  = "qr_code"
)

// Flat interest applied to every loan, plus the monthly penalty rate
// charged on the principal once the due date has passed.
const (
	InterestRate   = 0.10
	LateFeeMonthly = 0.05
)

const DefaultCurrency = "HTG"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrNotPending        = errors.New("loan is not pending")
	ErrNotApproved       = errors.New("loan is not approved")
	ErrAlreadyDisbursed  = errors.New("loan already disbursed")
	ErrInvalidTransition = errors.New("invalid loan status transition")
	ErrOpenLoan          = errors.New("borrower already has an open loan")
	ErrLimitExceeded     = errors.New("amount exceeds loan limit")
	ErrUnknownPeriod     = errors.New("unknown repayment period")
	ErrMissingAccount    = errors.New("disbursement account details required")
)

// RepaymentPeriods maps the period labels accepted on application forms
// to their length in days.
var RepaymentPeriods = map[string]int{
	"1 Week":   7,
	"2 Weeks":  14,
	"1 Month":  30,
	"2 Months": 60,
	"3 Months": 90,
	"4 Months": 120,
	"5 Months": 150,
	"6 Months": 180,
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusDisbursed},
	StatusDisbursed: {StatusRepaid, StatusOverdue},
	StatusOverdue:   {StatusRepaid},
}

// CanTransition reports whether a loan may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Open statuses still occupy the borrower's single-loan slot.
func (s Status) Open() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDisbursed, StatusOverdue:
		return true
	}
	return false
}

type Loan struct {
	ID                 uint64         `gorm:"primaryKey;column:id" json:"-"`
	LoanID             string         `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	UserID             string         `gorm:"size:36;index:idx_loans_user_active" json:"user_id"`
	LoanType           string         `gorm:"size:50" json:"loan_type"`
	Amount             float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Purpose            string         `gorm:"type:text" json:"purpose"`
	RepaymentPeriod    string         `gorm:"size:20" json:"repayment_period"`
	PeriodDays         int            `json:"period_days"`
	DisbursementMethod string         `gorm:"size:20" json:"disbursement_method"`
	AccountName        string         `gorm:"size:100" json:"account_name,omitempty"`
	AccountNumber      string         `gorm:"size:50" json:"account_number,omitempty"`
	QRCodeRef          string         `gorm:"type:text" json:"qr_code_ref,omitempty"`
	ApplicationDate    time.Time      `json:"application_date"`
	DueDate            time.Time      `json:"due_date"`
	Status             Status         `gorm:"type:enum('pending','approved','rejected','disbursed','repaid','overdue');default:'pending'" json:"status"`
	DisbursementStatus string         `gorm:"size:20;default:''" json:"disbursement_status,omitempty"`
	DisbursementTxID   string         `gorm:"size:100" json:"disbursement_tx_id,omitempty"`
	Currency           string         `gorm:"size:8;default:'HTG'" json:"currency"`
	ApprovedBy         string         `gorm:"size:32" json:"-"`
	ApprovedAt         *time.Time     `json:"approved_at,omitempty"`
	ApprovalNotes      string         `gorm:"type:text" json:"approval_notes,omitempty"`
	RejectedBy         string         `gorm:"size:32" json:"-"`
	RejectedAt         *time.Time     `json:"rejected_at,omitempty"`
	RejectionReason    string         `gorm:"type:text" json:"rejection_reason,omitempty"`
	DisbursedBy        string         `gorm:"size:32" json:"-"`
	DisbursedAt        *time.Time     `json:"disbursed_at,omitempty"`
	StatusUpdatedAt    time.Time      `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
