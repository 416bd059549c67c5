package withdrawal

import (
	"context"
	"errors"
	"strings"
	"testing"

	adminDomain "kredinou/internal/domain/admin"
	notificationDomain "kredinou/internal/domain/notification"
	"kredinou/internal/domain/uow"
	walletDomain "kredinou/internal/domain/wallet"
	withdrawalDomain "kredinou/internal/domain/withdrawal"
	"kredinou/internal/testutil/adminmock"
	"kredinou/internal/testutil/notificationmock"
	"kredinou/internal/testutil/uowmock"
	"kredinou/internal/testutil/usermock"
	"kredinou/internal/testutil/walletmock"
	"kredinou/internal/testutil/withdrawalmock"

	"gorm.io/gorm"
)

const borrowerID = "3f1b2c4d-0000-0000-0000-000000000003"

// walletBank keeps ordered wallet balances in memory and applies debits and
// credits the way the real repository does, including the balance guard.
type walletBank struct {
	order    []string
	balances map[string]float64
	debits   []withdrawalDomain.Deduction
}

func newWalletBank(balances ...float64) *walletBank {
	b := &walletBank{balances: map[string]float64{}}
	for i, bal := range balances {
		id := string(rune('a'+i)) + "-wallet"
		b.order = append(b.order, id)
		b.balances[id] = bal
	}
	return b
}

func (b *walletBank) repo() *walletmock.Repo {
	return &walletmock.Repo{
		ListByUserIDForUpdateFn: func(_ context.Context, _ string) ([]walletDomain.Wallet, error) {
			out := make([]walletDomain.Wallet, 0, len(b.order))
			for _, id := range b.order {
				out = append(out, walletDomain.Wallet{WalletID: id, UserID: borrowerID, Balance: b.balances[id]})
			}
			return out, nil
		},
		DebitFn: func(_ context.Context, walletID string, amount float64) error {
			if b.balances[walletID] < amount {
				return walletDomain.ErrInsufficientFunds
			}
			b.balances[walletID] -= amount
			b.debits = append(b.debits, withdrawalDomain.Deduction{WalletID: walletID, Amount: amount})
			return nil
		},
		CreditFn: func(_ context.Context, walletID string, amount float64) error {
			if _, ok := b.balances[walletID]; !ok {
				return walletDomain.ErrNotFound
			}
			b.balances[walletID] += amount
			return nil
		},
		TotalByUserIDFn: func(_ context.Context, _ string) (float64, error) {
			var total float64
			for _, bal := range b.balances {
				total += bal
			}
			return total, nil
		},
	}
}

type requestRig struct {
	bank       *walletBank
	stored     *withdrawalDomain.Withdrawal
	deductions []withdrawalDomain.Deduction
	actions    []adminDomain.Action
	notes      []notificationDomain.Notification
	uc         *Usecase
}

func newRequestRig(bank *walletBank) *requestRig {
	rig := &requestRig{bank: bank}
	wds := &withdrawalmock.Repo{
		CreateFn: func(_ context.Context, w *withdrawalDomain.Withdrawal) error {
			rig.stored = w
			return nil
		},
		AddDeductionsFn: func(_ context.Context, ds []withdrawalDomain.Deduction) error {
			rig.deductions = append(rig.deductions, ds...)
			return nil
		},
		GetByWithdrawalIDForUpdateFn: func(_ context.Context, id string) (*withdrawalDomain.Withdrawal, error) {
			if rig.stored == nil || id != rig.stored.WithdrawalID {
				return nil, gorm.ErrRecordNotFound
			}
			return rig.stored, nil
		},
		ListDeductionsFn: func(_ context.Context, _ string) ([]withdrawalDomain.Deduction, error) {
			return rig.deductions, nil
		},
		SaveFn: func(_ context.Context, _ *withdrawalDomain.Withdrawal) error { return nil },
	}
	admins := &adminmock.Repo{
		LogActionFn: func(_ context.Context, act *adminDomain.Action) error {
			rig.actions = append(rig.actions, *act)
			return nil
		},
	}
	notifs := &notificationmock.Repo{
		CreateFn: func(_ context.Context, n *notificationDomain.Notification) error {
			rig.notes = append(rig.notes, *n)
			return nil
		},
	}
	tx := uowmock.Passing(uow.Repos{
		Wallets:       bank.repo(),
		Withdrawals:   wds,
		Admins:        admins,
		Notifications: notifs,
	})
	rig.uc = NewUsecase(wds, &usermock.Repo{}, tx)
	return rig
}

func requestInput(amount float64) RequestInput {
	return RequestInput{
		UserID:        borrowerID,
		Amount:        amount,
		Service:       withdrawalDomain.ServiceMonCash,
		AccountName:   "Marie Joseph",
		AccountNumber: "50937001122",
	}
}

// ----- Request -----

func TestRequest_GreedySplitAcrossWallets(t *testing.T) {
	rig := newRequestRig(newWalletBank(500, 300, 200))

	res, err := rig.uc.Request(context.Background(), requestInput(700))
	if err != nil {
		t.Fatalf("Request err: %v", err)
	}
	if res.Withdrawal.Status != string(withdrawalDomain.StatusPending) {
		t.Fatalf("status=%s", res.Withdrawal.Status)
	}
	if res.RemainingBalance != 300 {
		t.Fatalf("remaining=%v, want 300", res.RemainingBalance)
	}

	// oldest wallet drained first, second one partially
	if len(rig.deductions) != 2 {
		t.Fatalf("deductions=%+v", rig.deductions)
	}
	if rig.deductions[0].WalletID != "a-wallet" || rig.deductions[0].Amount != 500 {
		t.Fatalf("first deduction: %+v", rig.deductions[0])
	}
	if rig.deductions[1].WalletID != "b-wallet" || rig.deductions[1].Amount != 200 {
		t.Fatalf("second deduction: %+v", rig.deductions[1])
	}
	var sum float64
	for _, d := range rig.deductions {
		sum += d.Amount
	}
	if sum != 700 {
		t.Fatalf("deduction sum=%v, want the requested amount", sum)
	}
	if rig.bank.balances["a-wallet"] != 0 || rig.bank.balances["b-wallet"] != 100 || rig.bank.balances["c-wallet"] != 200 {
		t.Fatalf("balances after: %+v", rig.bank.balances)
	}
	// every deduction row carries the withdrawal id
	for _, d := range rig.deductions {
		if d.WithdrawalID != rig.stored.WithdrawalID {
			t.Fatalf("deduction not linked: %+v", d)
		}
	}
}

func TestRequest_ExactDrain(t *testing.T) {
	rig := newRequestRig(newWalletBank(500, 300))

	res, err := rig.uc.Request(context.Background(), requestInput(800))
	if err != nil {
		t.Fatalf("Request err: %v", err)
	}
	if res.RemainingBalance != 0 {
		t.Fatalf("remaining=%v, want 0", res.RemainingBalance)
	}
	if len(rig.deductions) != 2 {
		t.Fatalf("deductions=%+v", rig.deductions)
	}
}

func TestRequest_SkipsEmptyWallets(t *testing.T) {
	rig := newRequestRig(newWalletBank(0, 400))

	_, err := rig.uc.Request(context.Background(), requestInput(300))
	if err != nil {
		t.Fatalf("Request err: %v", err)
	}
	if len(rig.deductions) != 1 || rig.deductions[0].WalletID != "b-wallet" {
		t.Fatalf("deductions=%+v", rig.deductions)
	}
}

func TestRequest_InsufficientFunds(t *testing.T) {
	rig := newRequestRig(newWalletBank(500, 300, 200))

	_, err := rig.uc.Request(context.Background(), requestInput(1000.01))
	if !errors.Is(err, walletDomain.ErrInsufficientFunds) {
		t.Fatalf("want ErrInsufficientFunds, got %v", err)
	}
	if !strings.Contains(err.Error(), "1000.00") {
		t.Fatalf("error should name the available total: %v", err)
	}
	if rig.stored != nil || len(rig.deductions) != 0 || len(rig.bank.debits) != 0 {
		t.Fatalf("nothing may be stored on a failed request")
	}
}

func TestRequest_RejectsBadInput(t *testing.T) {
	rig := newRequestRig(newWalletBank(500))

	if _, err := rig.uc.Request(context.Background(), requestInput(0)); err == nil {
		t.Fatalf("want error for non-positive amount")
	}
	in := requestInput(100)
	in.Service = "paypal"
	if _, err := rig.uc.Request(context.Background(), in); err == nil {
		t.Fatalf("want error for unsupported service")
	}
}

// ----- decisions -----

func TestApprove_Success(t *testing.T) {
	rig := newRequestRig(newWalletBank(500))
	if _, err := rig.uc.Request(context.Background(), requestInput(400)); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	balanceBefore := rig.bank.balances["a-wallet"]

	dto, err := rig.uc.Approve(context.Background(), DecisionInput{
		WithdrawalID: rig.stored.WithdrawalID, AdminID: "adm-1", Notes: "sent via moncash",
	})
	if err != nil {
		t.Fatalf("Approve err: %v", err)
	}
	if dto.Status != string(withdrawalDomain.StatusApproved) {
		t.Fatalf("status=%s", dto.Status)
	}
	if dto.AdminNotes != "sent via moncash" || dto.DecidedAt == nil {
		t.Fatalf("decision metadata: %+v", dto)
	}
	// approval must not move money again
	if rig.bank.balances["a-wallet"] != balanceBefore {
		t.Fatalf("balance moved on approval")
	}
	if len(rig.actions) != 1 || rig.actions[0].Action != "withdrawal_approved" {
		t.Fatalf("audit log: %+v", rig.actions)
	}
	if len(rig.notes) != 1 || rig.notes[0].Type != notificationDomain.TypeWithdrawal {
		t.Fatalf("notification: %+v", rig.notes)
	}
}

func TestApprove_NotPending(t *testing.T) {
	rig := newRequestRig(newWalletBank(500))
	if _, err := rig.uc.Request(context.Background(), requestInput(400)); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	rig.stored.Status = withdrawalDomain.StatusApproved

	_, err := rig.uc.Approve(context.Background(), DecisionInput{WithdrawalID: rig.stored.WithdrawalID, AdminID: "adm-1"})
	if !errors.Is(err, withdrawalDomain.ErrNotPending) {
		t.Fatalf("want ErrNotPending, got %v", err)
	}
}

func TestApprove_NotFound(t *testing.T) {
	rig := newRequestRig(newWalletBank(500))
	_, err := rig.uc.Approve(context.Background(), DecisionInput{WithdrawalID: "efefefefefefefefefefefefefefefef", AdminID: "adm-1"})
	if !errors.Is(err, withdrawalDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestReject_RestoresExactDeductions(t *testing.T) {
	rig := newRequestRig(newWalletBank(500, 300, 200))
	if _, err := rig.uc.Request(context.Background(), requestInput(700)); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	// after the request: 0 / 100 / 200

	res, err := rig.uc.Reject(context.Background(), DecisionInput{
		WithdrawalID: rig.stored.WithdrawalID, AdminID: "adm-2", Notes: "account number invalid",
	})
	if err != nil {
		t.Fatalf("Reject err: %v", err)
	}
	if res.Withdrawal.Status != string(withdrawalDomain.StatusRejected) {
		t.Fatalf("status=%s", res.Withdrawal.Status)
	}
	if res.RestoredBalance != 1000 {
		t.Fatalf("restored=%v, want 1000", res.RestoredBalance)
	}
	// each wallet gets back exactly what it gave
	if rig.bank.balances["a-wallet"] != 500 || rig.bank.balances["b-wallet"] != 300 || rig.bank.balances["c-wallet"] != 200 {
		t.Fatalf("balances after restore: %+v", rig.bank.balances)
	}
	if len(rig.actions) != 1 || rig.actions[0].Action != "withdrawal_rejected" {
		t.Fatalf("audit log: %+v", rig.actions)
	}
}

func TestReject_RequiresNotes(t *testing.T) {
	rig := newRequestRig(newWalletBank(500))
	if _, err := rig.uc.Reject(context.Background(), DecisionInput{WithdrawalID: "x", AdminID: "adm-2"}); err == nil {
		t.Fatalf("want error for empty notes")
	}
}

func TestReject_NotPending(t *testing.T) {
	rig := newRequestRig(newWalletBank(500))
	if _, err := rig.uc.Request(context.Background(), requestInput(400)); err != nil {
		t.Fatalf("seed request: %v", err)
	}
	rig.stored.Status = withdrawalDomain.StatusRejected
	balanceBefore := rig.bank.balances["a-wallet"]

	_, err := rig.uc.Reject(context.Background(), DecisionInput{
		WithdrawalID: rig.stored.WithdrawalID, AdminID: "adm-2", Notes: "dup",
	})
	if !errors.Is(err, withdrawalDomain.ErrNotPending) {
		t.Fatalf("want ErrNotPending, got %v", err)
	}
	// a second rejection must not credit the wallets again
	if rig.bank.balances["a-wallet"] != balanceBefore {
		t.Fatalf("balance moved on repeated rejection")
	}
}

// ----- admin views -----

func TestSummarize(t *testing.T) {
	wds := &withdrawalmock.Repo{
		CountByStatusFn: func(_ context.Context, status withdrawalDomain.Status) (int64, error) {
			switch status {
			case withdrawalDomain.StatusPending:
				return 4, nil
			case withdrawalDomain.StatusApproved:
				return 2, nil
			default:
				return 1, nil
			}
		},
		SumAmountByStatusFn: func(_ context.Context, status withdrawalDomain.Status) (float64, error) {
			if status != withdrawalDomain.StatusApproved {
				t.Fatalf("summed status %s", status)
			}
			return 950.50, nil
		},
	}
	uc := NewUsecase(wds, &usermock.Repo{}, uowmock.New())

	s, err := uc.Summarize(context.Background())
	if err != nil {
		t.Fatalf("Summarize err: %v", err)
	}
	if s.Pending != 4 || s.Approved != 2 || s.Rejected != 1 || s.ApprovedAmount != 950.50 {
		t.Fatalf("summary=%+v", s)
	}
}
