package loan

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	adminDomain "kredinou/internal/domain/admin"
	loanDomain "kredinou/internal/domain/loan"
	notificationDomain "kredinou/internal/domain/notification"
	"kredinou/internal/domain/stats"
	"kredinou/internal/domain/uow"
	userDomain "kredinou/internal/domain/user"
	"kredinou/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans loanDomain.Repository
	users userDomain.Repository
	uow   uow.UnitOfWork
}

func NewUsecase(loans loanDomain.Repository, users userDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, users: users, uow: tx}
}

// periodDays resolves either a known period label or a positive number of
// months (30 days each).
func periodDays(period string) (int, error) {
	if d, ok := loanDomain.RepaymentPeriods[period]; ok {
		return d, nil
	}
	m, err := strconv.ParseFloat(period, 64)
	if err != nil || m <= 0 {
		return 0, loanDomain.ErrUnknownPeriod
	}
	return int(math.Round(m * 30)), nil
}

func (u *Usecase) Apply(ctx context.Context, in ApplyInput) (*LoanDTO, error) {
	if in.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	days, err := periodDays(in.RepaymentPeriod)
	if err != nil {
		return nil, err
	}
	switch in.DisbursementMethod {
	case loanDomain.MethodNatCash, loanDomain.MethodMonCash:
		if in.AccountName == "" || in.AccountNumber == "" {
			return nil, loanDomain.ErrMissingAccount
		}
	case loanDomain.MethodQRCode:
		if in.QRCodeRef == "" {
			return nil, loanDomain.ErrMissingAccount
		}
	default:
		return nil, fmt.Errorf("unsupported disbursement method %q", in.DisbursementMethod)
	}

	usr, err := u.users.GetByUserID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	if in.Amount > usr.LoanLimit {
		return nil, fmt.Errorf("%w: limit %.2f", loanDomain.ErrLimitExceeded, usr.LoanLimit)
	}

	// One open loan per borrower at a time.
	open, err := u.loans.GetOpenLoanByUserID(ctx, in.UserID)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", loanDomain.ErrOpenLoan, open.LoanID)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	now := time.Now().UTC()
	l := &loanDomain.Loan{
		LoanID:             id.NewID32(),
		UserID:             in.UserID,
		LoanType:           in.LoanType,
		Amount:             in.Amount,
		Purpose:            in.Purpose,
		RepaymentPeriod:    in.RepaymentPeriod,
		PeriodDays:         days,
		DisbursementMethod: in.DisbursementMethod,
		AccountName:        in.AccountName,
		AccountNumber:      in.AccountNumber,
		QRCodeRef:          in.QRCodeRef,
		ApplicationDate:    now,
		DueDate:            now.AddDate(0, 0, days),
		Status:             loanDomain.StatusPending,
		Currency:           loanDomain.DefaultCurrency,
		StatusUpdatedAt:    now,
	}
	if err := u.loans.Create(ctx, l); err != nil {
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

func (u *Usecase) Get(ctx context.Context, userID, loanID string) (*LoanDTO, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	// userID is empty for admin lookups
	if userID != "" && l.UserID != userID {
		return nil, loanDomain.ErrNotFound
	}
	dto := toDTO(l)
	return &dto, nil
}

func (u *Usecase) History(ctx context.Context, userID string, offset, limit int) (*Page, error) {
	ls, total, err := u.loans.ListByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &Page{Items: toDTOs(ls), Total: total}, nil
}

func (u *Usecase) Active(ctx context.Context, userID string) (*LoanDTO, error) {
	l, err := u.loans.GetLatestActiveByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	dto := toDTO(l)
	return &dto, nil
}

func (u *Usecase) ListByStatus(ctx context.Context, status loanDomain.Status, offset, limit int) (*AdminPage, error) {
	ls, total, err := u.loans.ListByStatus(ctx, status, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]AdminItem, 0, len(ls))
	seen := map[string]*userDomain.User{}
	for i := range ls {
		item := AdminItem{LoanDTO: toDTO(&ls[i])}
		usr, ok := seen[ls[i].UserID]
		if !ok {
			if usr, err = u.users.GetByUserID(ctx, ls[i].UserID); err != nil {
				usr = nil
			}
			seen[ls[i].UserID] = usr
		}
		if usr != nil {
			item.UserName = usr.FullName()
			item.UserPhone = usr.Phone
		}
		items = append(items, item)
	}
	return &AdminPage{Items: items, Total: total}, nil
}

func (u *Usecase) Approve(ctx context.Context, loanID, adminID, notes string) (*DecisionResult, error) {
	var out *DecisionResult
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusPending {
			return loanDomain.ErrNotPending
		}
		now := time.Now().UTC()
		l.Status = loanDomain.StatusApproved
		l.ApprovedBy = adminID
		l.ApprovedAt = &now
		l.ApprovalNotes = notes
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  adminID,
			Action:   "loan_approved",
			TargetID: l.LoanID,
			Details:  fmt.Sprintf(`{"amount":%.2f}`, l.Amount),
		}); err != nil {
			return err
		}
		if err := r.Notifications.Create(ctx, &notificationDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         l.UserID,
			Type:           notificationDomain.TypeLoanApproved,
			Message:        fmt.Sprintf("Your loan of %.2f %s was approved", l.Amount, l.Currency),
		}); err != nil {
			return err
		}
		total, err := r.Loans.SumApprovedUndisbursed(ctx)
		if err != nil {
			return err
		}
		out = &DecisionResult{Loan: toDTO(l), TotalAwaitingDisbursement: total}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Reject(ctx context.Context, loanID, adminID, reason string) (*LoanDTO, error) {
	if reason == "" {
		return nil, errors.New("rejection reason is required")
	}
	var out *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status != loanDomain.StatusPending {
			return loanDomain.ErrNotPending
		}
		now := time.Now().UTC()
		l.Status = loanDomain.StatusRejected
		l.RejectedBy = adminID
		l.RejectedAt = &now
		l.RejectionReason = reason
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  adminID,
			Action:   "loan_rejected",
			TargetID: l.LoanID,
			Details:  fmt.Sprintf(`{"reason":%q}`, reason),
		}); err != nil {
			return err
		}
		if err := r.Notifications.Create(ctx, &notificationDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         l.UserID,
			Type:           notificationDomain.TypeLoanRejected,
			Message:        fmt.Sprintf("Your loan application was rejected: %s", reason),
		}); err != nil {
			return err
		}
		dto := toDTO(l)
		out = &dto
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Disburse records the executed payout: the loan moves to disbursed and its
// disbursement is marked completed, which is what makes the wallet sync
// pick it up.
func (u *Usecase) Disburse(ctx context.Context, loanID, adminID, transactionID string) (*LoanDTO, error) {
	if transactionID == "" {
		return nil, errors.New("transaction id is required")
	}
	var out *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.DisbursementStatus == loanDomain.DisbursementCompleted {
			return loanDomain.ErrAlreadyDisbursed
		}
		if l.Status != loanDomain.StatusApproved {
			return loanDomain.ErrNotApproved
		}
		now := time.Now().UTC()
		l.Status = loanDomain.StatusDisbursed
		l.DisbursementStatus = loanDomain.DisbursementCompleted
		l.DisbursementTxID = transactionID
		l.DisbursedBy = adminID
		l.DisbursedAt = &now
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  adminID,
			Action:   "loan_disbursed",
			TargetID: l.LoanID,
			Details:  fmt.Sprintf(`{"amount":%.2f,"transaction_id":%q}`, l.Amount, transactionID),
		}); err != nil {
			return err
		}
		if err := r.Notifications.Create(ctx, &notificationDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         l.UserID,
			Type:           notificationDomain.TypeLoanDisbursed,
			Message:        fmt.Sprintf("Your loan of %.2f %s has been disbursed via %s", l.Amount, l.Currency, l.DisbursementMethod),
		}); err != nil {
			return err
		}
		dto := toDTO(l)
		out = &dto
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (u *Usecase) UpdateStatus(ctx context.Context, loanID, adminID string, to loanDomain.Status) (*LoanDTO, error) {
	var out *LoanDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if !loanDomain.CanTransition(l.Status, to) {
			return loanDomain.ErrInvalidTransition
		}
		now := time.Now().UTC()
		from := l.Status
		l.Status = to
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  adminID,
			Action:   "loan_status_updated",
			TargetID: l.LoanID,
			Details:  fmt.Sprintf(`{"from":%q,"to":%q}`, from, to),
		}); err != nil {
			return err
		}
		dto := toDTO(l)
		out = &dto
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

func (u *Usecase) PendingDisbursements(ctx context.Context) (*PendingDisbursementStats, error) {
	count, err := u.loans.CountByStatus(ctx, loanDomain.StatusApproved)
	if err != nil {
		return nil, err
	}
	total, err := u.loans.SumApprovedUndisbursed(ctx)
	if err != nil {
		return nil, err
	}
	return &PendingDisbursementStats{Count: count, Total: total}, nil
}

func (u *Usecase) DisbursedTotals(ctx context.Context) ([]stats.CurrencyTotal, error) {
	return u.loans.DisbursedTotalsByCurrency(ctx)
}

func toDTO(l *loanDomain.Loan) LoanDTO {
	return LoanDTO{
		LoanID:             l.LoanID,
		UserID:             l.UserID,
		LoanType:           l.LoanType,
		Amount:             l.Amount,
		Purpose:            l.Purpose,
		RepaymentPeriod:    l.RepaymentPeriod,
		PeriodDays:         l.PeriodDays,
		DisbursementMethod: l.DisbursementMethod,
		ApplicationDate:    l.ApplicationDate,
		DueDate:            l.DueDate,
		Status:             string(l.Status),
		DisbursementStatus: l.DisbursementStatus,
		Currency:           l.Currency,
		ApprovalNotes:      l.ApprovalNotes,
		RejectionReason:    l.RejectionReason,
		DisbursedAt:        l.DisbursedAt,
		CreatedAt:          l.CreatedAt,
	}
}

func toDTOs(ls []loanDomain.Loan) []LoanDTO {
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, toDTO(&ls[i]))
	}
	return out
}
