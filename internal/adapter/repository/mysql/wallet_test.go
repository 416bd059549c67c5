package mysql

import (
	"context"
	"errors"
	"testing"

	domain "kredinou/internal/domain/wallet"
	"kredinou/pkg/id"

	"gorm.io/gorm"
)

func seedWallet(t *testing.T, repo *WalletRepository, userID, loanID string, balance float64) *domain.Wallet {
	t.Helper()
	w := &domain.Wallet{
		WalletID: id.NewID32(),
		UserID:   userID,
		LoanID:   loanID,
		Balance:  balance,
		Currency: "HTG",
	}
	if err := repo.Create(context.Background(), w); err != nil {
		t.Fatalf("seed wallet: %v", err)
	}
	return w
}

func TestWalletDebit_EnoughBalance(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	w := seedWallet(t, repo, "user-1", id.NewID32(), 500)

	if err := repo.Debit(ctx, w.WalletID, 200); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	got, err := repo.GetByWalletID(ctx, w.WalletID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Balance != 300 {
		t.Fatalf("balance = %v, want 300", got.Balance)
	}
}

func TestWalletDebit_InsufficientLeavesBalance(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	w := seedWallet(t, repo, "user-2", id.NewID32(), 100)

	err := repo.Debit(ctx, w.WalletID, 100.01)
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	got, _ := repo.GetByWalletID(ctx, w.WalletID)
	if got.Balance != 100 {
		t.Fatalf("balance changed on failed debit: %v", got.Balance)
	}
}

func TestWalletDebit_ExactBalanceDrainsToZero(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	w := seedWallet(t, repo, "user-3", id.NewID32(), 250)

	if err := repo.Debit(ctx, w.WalletID, 250); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	got, _ := repo.GetByWalletID(ctx, w.WalletID)
	if got.Balance != 0 {
		t.Fatalf("balance = %v, want 0", got.Balance)
	}
}

func TestWalletCredit(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	w := seedWallet(t, repo, "user-4", id.NewID32(), 40)

	if err := repo.Credit(ctx, w.WalletID, 60); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	got, _ := repo.GetByWalletID(ctx, w.WalletID)
	if got.Balance != 100 {
		t.Fatalf("balance = %v, want 100", got.Balance)
	}

	if err := repo.Credit(ctx, id.NewID32(), 10); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown wallet, got %v", err)
	}
}

func TestWalletListByUserID_Order(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	first := seedWallet(t, repo, "user-5", id.NewID32(), 10)
	second := seedWallet(t, repo, "user-5", id.NewID32(), 20)
	third := seedWallet(t, repo, "user-5", id.NewID32(), 30)
	seedWallet(t, repo, "user-6", id.NewID32(), 99)

	got, err := repo.ListByUserID(ctx, "user-5")
	if err != nil {
		t.Fatalf("ListByUserID: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []string{first.WalletID, second.WalletID, third.WalletID}
	for i, w := range got {
		if w.WalletID != want[i] {
			t.Fatalf("position %d: got %s, want %s", i, w.WalletID, want[i])
		}
	}
}

func TestWalletTotalByUserID(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	seedWallet(t, repo, "user-7", id.NewID32(), 500)
	seedWallet(t, repo, "user-7", id.NewID32(), 300)

	total, err := repo.TotalByUserID(ctx, "user-7")
	if err != nil {
		t.Fatalf("TotalByUserID: %v", err)
	}
	if total != 800 {
		t.Fatalf("total = %v, want 800", total)
	}

	empty, err := repo.TotalByUserID(ctx, "nobody")
	if err != nil {
		t.Fatalf("TotalByUserID empty: %v", err)
	}
	if empty != 0 {
		t.Fatalf("empty total = %v, want 0", empty)
	}
}

func TestWalletGetByUserAndLoan(t *testing.T) {
	db := openTestDB(t)
	repo := NewWalletRepository(db)
	ctx := context.Background()

	loanID := id.NewID32()
	w := seedWallet(t, repo, "user-8", loanID, 123)

	got, err := repo.GetByUserAndLoan(ctx, "user-8", loanID)
	if err != nil {
		t.Fatalf("GetByUserAndLoan: %v", err)
	}
	if got.WalletID != w.WalletID {
		t.Fatalf("got %s, want %s", got.WalletID, w.WalletID)
	}

	if _, err := repo.GetByUserAndLoan(ctx, "user-8", id.NewID32()); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
