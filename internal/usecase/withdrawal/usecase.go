package withdrawal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	adminDomain "kredinou/internal/domain/admin"
	notificationDomain "kredinou/internal/domain/notification"
	"kredinou/internal/domain/uow"
	userDomain "kredinou/internal/domain/user"
	walletDomain "kredinou/internal/domain/wallet"
	withdrawalDomain "kredinou/internal/domain/withdrawal"
	"kredinou/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct {
	withdrawals withdrawalDomain.Repository
	users       userDomain.Repository
	uow         uow.UnitOfWork
}

func NewUsecase(withdrawals withdrawalDomain.Repository, users userDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{withdrawals: withdrawals, users: users, uow: tx}
}

type RequestInput struct {
	UserID        string
	Amount        float64
	Service       string
	AccountName   string
	AccountNumber string
}

type WithdrawalDTO struct {
	WithdrawalID  string     `json:"withdrawal_id"`
	UserID        string     `json:"user_id"`
	Amount        float64    `json:"amount"`
	Service       string     `json:"service"`
	AccountName   string     `json:"account_name"`
	AccountNumber string     `json:"account_number"`
	Status        string     `json:"status"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type RequestResult struct {
	Withdrawal       WithdrawalDTO `json:"withdrawal"`
	RemainingBalance float64       `json:"remaining_balance"`
}

// Request debits the user's wallets oldest-first and records one deduction
// row per touched wallet, all inside a single transaction. The wallet rows
// stay locked from the balance read to the commit, so two concurrent
// requests cannot both consume the same funds.
func (u *Usecase) Request(ctx context.Context, in RequestInput) (*RequestResult, error) {
	if in.Amount <= 0 {
		return nil, errors.New("amount must be positive")
	}
	if in.Service != withdrawalDomain.ServiceMonCash && in.Service != withdrawalDomain.ServiceNatCash {
		return nil, fmt.Errorf("unsupported withdrawal service %q", in.Service)
	}

	var out *RequestResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		ws, err := r.Wallets.ListByUserIDForUpdate(ctx, in.UserID)
		if err != nil {
			return err
		}

		total := decimal.Zero
		for _, w := range ws {
			total = total.Add(decimal.NewFromFloat(w.Balance))
		}
		want := decimal.NewFromFloat(in.Amount)
		if want.GreaterThan(total) {
			return fmt.Errorf("%w: available %s", walletDomain.ErrInsufficientFunds, total.StringFixed(2))
		}

		wd := &withdrawalDomain.Withdrawal{
			WithdrawalID:  id.NewID32(),
			UserID:        in.UserID,
			Amount:        in.Amount,
			Service:       in.Service,
			AccountName:   in.AccountName,
			AccountNumber: in.AccountNumber,
			Status:        withdrawalDomain.StatusPending,
		}

		remaining := want
		deds := make([]withdrawalDomain.Deduction, 0, len(ws))
		for i := range ws {
			if remaining.IsZero() {
				break
			}
			w := &ws[i]
			bal := decimal.NewFromFloat(w.Balance)
			if !bal.IsPositive() {
				continue
			}
			take := remaining
			if bal.LessThan(take) {
				take = bal
			}
			takeF := take.InexactFloat64()
			if err := r.Wallets.Debit(ctx, w.WalletID, takeF); err != nil {
				return err
			}
			deds = append(deds, withdrawalDomain.Deduction{
				WithdrawalID: wd.WithdrawalID,
				WalletID:     w.WalletID,
				Amount:       takeF,
			})
			remaining = remaining.Sub(take)
		}
		if !remaining.IsZero() {
			return walletDomain.ErrInsufficientFunds
		}

		if err := r.Withdrawals.Create(ctx, wd); err != nil {
			return err
		}
		if err := r.Withdrawals.AddDeductions(ctx, deds); err != nil {
			return err
		}

		left, err := r.Wallets.TotalByUserID(ctx, in.UserID)
		if err != nil {
			return err
		}
		out = &RequestResult{Withdrawal: toDTO(wd), RemainingBalance: left}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) History(ctx context.Context, userID string) ([]WithdrawalDTO, error) {
	ws, err := u.withdrawals.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]WithdrawalDTO, 0, len(ws))
	for i := range ws {
		out = append(out, toDTO(&ws[i]))
	}
	return out, nil
}

type DecisionInput struct {
	WithdrawalID string
	AdminID      string
	Notes        string
}

// Approve flips a pending withdrawal to approved. The funds already left
// the wallets when the request was made, so no balance moves here.
func (u *Usecase) Approve(ctx context.Context, in DecisionInput) (*WithdrawalDTO, error) {
	var out *WithdrawalDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		wd, err := r.Withdrawals.GetByWithdrawalIDForUpdate(ctx, in.WithdrawalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return withdrawalDomain.ErrNotFound
			}
			return err
		}
		if wd.Status != withdrawalDomain.StatusPending {
			return withdrawalDomain.ErrNotPending
		}

		now := time.Now().UTC()
		wd.Status = withdrawalDomain.StatusApproved
		wd.AdminNotes = in.Notes
		wd.DecidedBy = in.AdminID
		wd.DecidedAt = &now
		if err := r.Withdrawals.Save(ctx, wd); err != nil {
			return err
		}

		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  in.AdminID,
			Action:   "withdrawal_approved",
			TargetID: wd.WithdrawalID,
			Details:  detailsJSON(map[string]any{"amount": wd.Amount, "service": wd.Service}),
		}); err != nil {
			return err
		}
		if err := r.Notifications.Create(ctx, &notificationDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         wd.UserID,
			Type:           notificationDomain.TypeWithdrawal,
			Message:        fmt.Sprintf("Your withdrawal of %.2f HTG was approved", wd.Amount),
		}); err != nil {
			return err
		}

		dto := toDTO(wd)
		out = &dto
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type RejectResult struct {
	Withdrawal      WithdrawalDTO `json:"withdrawal"`
	RestoredBalance float64       `json:"restored_balance"`
}

// Reject puts the recorded deductions back, wallet by wallet, and marks
// the withdrawal rejected. The stored amounts are credited as-is; nothing
// is recomputed.
func (u *Usecase) Reject(ctx context.Context, in DecisionInput) (*RejectResult, error) {
	if in.Notes == "" {
		return nil, errors.New("rejection reason is required")
	}
	var out *RejectResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		wd, err := r.Withdrawals.GetByWithdrawalIDForUpdate(ctx, in.WithdrawalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return withdrawalDomain.ErrNotFound
			}
			return err
		}
		if wd.Status != withdrawalDomain.StatusPending {
			return withdrawalDomain.ErrNotPending
		}

		deds, err := r.Withdrawals.ListDeductions(ctx, wd.WithdrawalID)
		if err != nil {
			return err
		}
		for _, d := range deds {
			if err := r.Wallets.Credit(ctx, d.WalletID, d.Amount); err != nil {
				return err
			}
		}

		now := time.Now().UTC()
		wd.Status = withdrawalDomain.StatusRejected
		wd.AdminNotes = in.Notes
		wd.DecidedBy = in.AdminID
		wd.DecidedAt = &now
		if err := r.Withdrawals.Save(ctx, wd); err != nil {
			return err
		}

		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  in.AdminID,
			Action:   "withdrawal_rejected",
			TargetID: wd.WithdrawalID,
			Details:  detailsJSON(map[string]any{"amount": wd.Amount, "reason": in.Notes}),
		}); err != nil {
			return err
		}
		if err := r.Notifications.Create(ctx, &notificationDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         wd.UserID,
			Type:           notificationDomain.TypeWithdrawal,
			Message:        fmt.Sprintf("Your withdrawal of %.2f HTG was rejected: %s", wd.Amount, in.Notes),
		}); err != nil {
			return err
		}

		restored, err := r.Wallets.TotalByUserID(ctx, wd.UserID)
		if err != nil {
			return err
		}
		out = &RejectResult{Withdrawal: toDTO(wd), RestoredBalance: restored}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type AdminItem struct {
	WithdrawalDTO
	UserName  string `json:"user_name,omitempty"`
	UserPhone string `json:"user_phone,omitempty"`
}

type AdminList struct {
	Items []AdminItem `json:"items"`
	Total int64       `json:"total"`
}

func (u *Usecase) ListByStatus(ctx context.Context, status withdrawalDomain.Status, offset, limit int) (*AdminList, error) {
	ws, total, err := u.withdrawals.ListByStatus(ctx, status, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]AdminItem, 0, len(ws))
	seen := map[string]*userDomain.User{}
	for i := range ws {
		item := AdminItem{WithdrawalDTO: toDTO(&ws[i])}
		usr, ok := seen[ws[i].UserID]
		if !ok {
			if usr, err = u.users.GetByUserID(ctx, ws[i].UserID); err != nil {
				usr = nil
			}
			seen[ws[i].UserID] = usr
		}
		if usr != nil {
			item.UserName = usr.FullName()
			item.UserPhone = usr.Phone
		}
		items = append(items, item)
	}
	return &AdminList{Items: items, Total: total}, nil
}

type Summary struct {
	Pending        int64   `json:"pending"`
	Approved       int64   `json:"approved"`
	Rejected       int64   `json:"rejected"`
	ApprovedAmount float64 `json:"approved_amount"`
}

func (u *Usecase) Summarize(ctx context.Context) (*Summary, error) {
	s := &Summary{}
	var err error
	if s.Pending, err = u.withdrawals.CountByStatus(ctx, withdrawalDomain.StatusPending); err != nil {
		return nil, err
	}
	if s.Approved, err = u.withdrawals.CountByStatus(ctx, withdrawalDomain.StatusApproved); err != nil {
		return nil, err
	}
	if s.Rejected, err = u.withdrawals.CountByStatus(ctx, withdrawalDomain.StatusRejected); err != nil {
		return nil, err
	}
	if s.ApprovedAmount, err = u.withdrawals.SumAmountByStatus(ctx, withdrawalDomain.StatusApproved); err != nil {
		return nil, err
	}
	return s, nil
}

func toDTO(w *withdrawalDomain.Withdrawal) WithdrawalDTO {
	return WithdrawalDTO{
		WithdrawalID:  w.WithdrawalID,
		UserID:        w.UserID,
		Amount:        w.Amount,
		Service:       w.Service,
		AccountName:   w.AccountName,
		AccountNumber: w.AccountNumber,
		Status:        string(w.Status),
		AdminNotes:    w.AdminNotes,
		DecidedAt:     w.DecidedAt,
		CreatedAt:     w.CreatedAt,
	}
}

func detailsJSON(m map[string]any) string {
	b, _ := json.Marshal(m)
	return string(b)
}
