package repayment

import (
	"context"
	"errors"
	"fmt"
	"time"

	adminDomain "kredinou/internal/domain/admin"
	loanDomain "kredinou/internal/domain/loan"
	notificationDomain "kredinou/internal/domain/notification"
	repaymentDomain "kredinou/internal/domain/repayment"
	"kredinou/internal/domain/uow"
	"kredinou/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	loans      loanDomain.Repository
	repayments repaymentDomain.Repository
	uow        uow.UnitOfWork
}

func NewUsecase(loans loanDomain.Repository, repayments repaymentDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, repayments: repayments, uow: tx}
}

type SubmitInput struct {
	UserID    string
	LoanID    string
	Amount    float64
	Method    string
	Reference string
	ProofURL  string
}

type RepaymentDTO struct {
	RepaymentID     string     `json:"repayment_id"`
	LoanID          string     `json:"loan_id"`
	UserID          string     `json:"user_id"`
	Amount          float64    `json:"amount"`
	Method          string     `json:"method"`
	Reference       string     `json:"reference"`
	ProofURL        string     `json:"proof_url"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Submit records a claimed payment against the caller's loan. The claim
// waits for admin verification and has no effect on the loan until then.
func (u *Usecase) Submit(ctx context.Context, in SubmitInput) (*RepaymentDTO, error) {
	if in.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	l, err := u.loans.GetByLoanID(ctx, in.LoanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	if l.UserID != in.UserID {
		return nil, loanDomain.ErrNotFound
	}
	if l.Status != loanDomain.StatusDisbursed && l.Status != loanDomain.StatusOverdue {
		return nil, repaymentDomain.ErrLoanNotRepayable
	}

	verified, err := u.repayments.SumVerifiedByLoanID(ctx, l.LoanID)
	if err != nil {
		return nil, err
	}
	outstanding := totalDue(l, time.Now().UTC()).Sub(decimal.NewFromFloat(verified))
	if decimal.NewFromFloat(in.Amount).GreaterThan(outstanding) {
		return nil, fmt.Errorf("%w: outstanding %s", repaymentDomain.ErrExceedsOutstanding, outstanding.StringFixed(2))
	}

	p := &repaymentDomain.Repayment{
		RepaymentID: id.NewID32(),
		LoanID:      l.LoanID,
		UserID:      in.UserID,
		Amount:      in.Amount,
		Method:      in.Method,
		Reference:   in.Reference,
		ProofURL:    in.ProofURL,
		Status:      repaymentDomain.StatusPendingVerification,
	}
	if err := u.repayments.Create(ctx, p); err != nil {
		return nil, err
	}
	dto := toDTO(p)
	return &dto, nil
}

type LoanStatusDTO struct {
	LoanID        string    `json:"loan_id"`
	Status        string    `json:"status"`
	DueDate       time.Time `json:"due_date"`
	Principal     float64   `json:"principal"`
	TotalDue      float64   `json:"total_due"`
	LateFee       float64   `json:"late_fee"`
	TotalVerified float64   `json:"total_verified"`
	Outstanding   float64   `json:"outstanding"`
	PendingCount  int64     `json:"pending_verification_count"`
}

func (u *Usecase) LoanStatus(ctx context.Context, userID, loanID string) (*LoanStatusDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	if userID != "" && l.UserID != userID {
		return nil, loanDomain.ErrNotFound
	}

	verified, err := u.repayments.SumVerifiedByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	pending, err := u.repayments.CountPendingByLoanID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	due := totalDue(l, now)
	outstanding := due.Sub(decimal.NewFromFloat(verified))
	if outstanding.IsNegative() {
		outstanding = decimal.Zero
	}
	return &LoanStatusDTO{
		LoanID:        l.LoanID,
		Status:        string(l.Status),
		DueDate:       l.DueDate,
		Principal:     l.Amount,
		TotalDue:      due.InexactFloat64(),
		LateFee:       lateFee(l.Amount, l.DueDate, now).InexactFloat64(),
		TotalVerified: verified,
		Outstanding:   outstanding.InexactFloat64(),
		PendingCount:  pending,
	}, nil
}

func (u *Usecase) History(ctx context.Context, userID string, offset, limit int) ([]RepaymentDTO, int64, error) {
	ps, total, err := u.repayments.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]RepaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, toDTO(&ps[i]))
	}
	return out, total, nil
}

func (u *Usecase) ListPending(ctx context.Context, offset, limit int) ([]RepaymentDTO, int64, error) {
	ps, total, err := u.repayments.ListByStatus(ctx, repaymentDomain.StatusPendingVerification, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]RepaymentDTO, 0, len(ps))
	for i := range ps {
		out = append(out, toDTO(&ps[i]))
	}
	return out, total, nil
}

type VerifyResult struct {
	Repayment  RepaymentDTO `json:"repayment"`
	LoanStatus string       `json:"loan_status"`
	LoanRepaid bool         `json:"loan_repaid"`
}

// Verify marks a claimed payment as verified and closes the loan once the
// verified total covers principal, interest and any late fee. The loan row
// is locked together with the repayment so two admins cannot both close it.
func (u *Usecase) Verify(ctx context.Context, repaymentID, adminID string) (*VerifyResult, error) {
	var out *VerifyResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Repayments.GetByRepaymentIDForUpdate(ctx, repaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repaymentDomain.ErrNotFound
			}
			return err
		}
		if p.Status != repaymentDomain.StatusPendingVerification {
			return repaymentDomain.ErrNotPending
		}
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, p.LoanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return loanDomain.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		p.Status = repaymentDomain.StatusVerified
		p.VerifiedBy = adminID
		p.VerifiedAt = &now
		if err := r.Repayments.Save(ctx, p); err != nil {
			return err
		}

		verified, err := r.Repayments.SumVerifiedByLoanID(ctx, l.LoanID)
		if err != nil {
			return err
		}
		repaid := false
		if decimal.NewFromFloat(verified).GreaterThanOrEqual(totalDue(l, now)) &&
			(l.Status == loanDomain.StatusDisbursed || l.Status == loanDomain.StatusOverdue) {
			l.Status = loanDomain.StatusRepaid
			l.StatusUpdatedAt = now
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
			repaid = true
		}

		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  adminID,
			Action:   "repayment_verified",
			TargetID: p.RepaymentID,
			Details:  fmt.Sprintf(`{"loan_id":%q,"amount":%.2f}`, l.LoanID, p.Amount),
		}); err != nil {
			return err
		}
		msg := fmt.Sprintf("Your repayment of %.2f HTG was verified", p.Amount)
		if repaid {
			msg += ". Your loan is fully repaid."
		}
		if err := r.Notifications.Create(ctx, &notificationDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         p.UserID,
			Type:           "repayment_verified",
			Message:        msg,
		}); err != nil {
			return err
		}

		out = &VerifyResult{Repayment: toDTO(p), LoanStatus: string(l.Status), LoanRepaid: repaid}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject declines a claimed payment; the loan's verified total is untouched.
func (u *Usecase) Reject(ctx context.Context, repaymentID, adminID, reason string) (*RepaymentDTO, error) {
	if reason == "" {
		return nil, errors.New("rejection reason is required")
	}
	var out *RepaymentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Repayments.GetByRepaymentIDForUpdate(ctx, repaymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repaymentDomain.ErrNotFound
			}
			return err
		}
		if p.Status != repaymentDomain.StatusPendingVerification {
			return repaymentDomain.ErrNotPending
		}

		p.Status = repaymentDomain.StatusRejected
		p.RejectionReason = reason
		if err := r.Repayments.Save(ctx, p); err != nil {
			return err
		}
		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  adminID,
			Action:   "repayment_rejected",
			TargetID: p.RepaymentID,
			Details:  fmt.Sprintf(`{"reason":%q}`, reason),
		}); err != nil {
			return err
		}
		dto := toDTO(p)
		out = &dto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// lateFee charges 5% of the principal per started 30-day block past the
// due date. One day late already counts as a full block.
func lateFee(principal float64, due, now time.Time) decimal.Decimal {
	if !now.After(due) {
		return decimal.Zero
	}
	daysLate := int64(now.Sub(due).Hours() / 24)
	blocks := daysLate/30 + 1
	return decimal.NewFromFloat(principal).
		Mul(decimal.NewFromFloat(loanDomain.LateFeeMonthly)).
		Mul(decimal.NewFromInt(blocks))
}

// totalDue is principal plus flat interest plus the current late fee.
func totalDue(l *loanDomain.Loan, now time.Time) decimal.Decimal {
	p := decimal.NewFromFloat(l.Amount)
	due := p.Mul(decimal.NewFromFloat(1 + loanDomain.InterestRate))
	return due.Add(lateFee(l.Amount, l.DueDate, now)).Round(2)
}

func toDTO(p *repaymentDomain.Repayment) RepaymentDTO {
	return RepaymentDTO{
		RepaymentID:     p.RepaymentID,
		LoanID:          p.LoanID,
		UserID:          p.UserID,
		Amount:          p.Amount,
		Method:          p.Method,
		Reference:       p.Reference,
		ProofURL:        p.ProofURL,
		Status:          string(p.Status),
		RejectionReason: p.RejectionReason,
		VerifiedAt:      p.VerifiedAt,
		CreatedAt:       p.CreatedAt,
	}
}
