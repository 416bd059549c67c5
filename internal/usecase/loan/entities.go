package loan

import (
	"time"
)

type ApplyInput struct {
	UserID             string
	LoanType           string
	Amount             float64
	Purpose            string
	RepaymentPeriod    string
	DisbursementMethod string
	AccountName        string
	AccountNumber      string
	QRCodeRef          string
}

type LoanDTO struct {
	LoanID             string     `json:"loan_id"`
	UserID             string     `json:"user_id"`
	LoanType           string     `json:"loan_type"`
	Amount             float64    `json:"amount"`
	Purpose            string     `json:"purpose"`
	RepaymentPeriod    string     `json:"repayment_period"`
	PeriodDays         int        `json:"period_days"`
	DisbursementMethod string     `json:"disbursement_method"`
	ApplicationDate    time.Time  `json:"application_date"`
	DueDate            time.Time  `json:"due_date"`
	Status             string     `json:"status"`
	DisbursementStatus string     `json:"disbursement_status,omitempty"`
	Currency           string     `json:"currency"`
	ApprovalNotes      string     `json:"approval_notes,omitempty"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	DisbursedAt        *time.Time `json:"disbursed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type Page struct {
	Items []LoanDTO `json:"items"`
	Total int64     `json:"total"`
}

type AdminItem struct {
	LoanDTO
	UserName  string `json:"user_name,omitempty"`
	UserPhone string `json:"user_phone,omitempty"`
}

type AdminPage struct {
	Items []AdminItem `json:"items"`
	Total int64       `json:"total"`
}

type DecisionResult struct {
	Loan LoanDTO `json:"loan"`
	// Sum of approved loans still waiting for their payout.
	TotalAwaitingDisbursement float64 `json:"total_awaiting_disbursement"`
}

type PendingDisbursementStats struct {
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}
