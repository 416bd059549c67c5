package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	adminDomain "kredinou/internal/domain/admin"
	loanDomain "kredinou/internal/domain/loan"
	"kredinou/internal/domain/uow"
	walletDomain "kredinou/internal/domain/wallet"
	"kredinou/pkg/id"

	"gorm.io/gorm"
)

func makeWalletDomain(userID, loanID string, balance float64) *walletDomain.Wallet {
	return &walletDomain.Wallet{
		WalletID: id.NewID32(),
		UserID:   userID,
		LoanID:   loanID,
		Balance:  balance,
		Currency: loanDomain.DefaultCurrency,
	}
}

// ----------------------------- Tests -----------------------------

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	walletRepo := NewWalletRepository(db)

	userID := "usr-commit"
	var loanID string

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		// Create loan, then its wallet in the same transaction
		l := makeLoan(userID, loanDomain.StatusDisbursed)
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		if l.ID == 0 {
			t.Fatalf("loan auto ID not set")
		}
		loanID = l.LoanID
		return r.Wallets.Create(ctx, makeWalletDomain(userID, l.LoanID, l.Amount))
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	// Verify post-commit visibility
	if _, err := loanRepo.GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("loan not visible after commit: %v", err)
	}
	w, err := walletRepo.GetByUserAndLoan(ctx, userID, loanID)
	if err != nil {
		t.Fatalf("wallet not visible after commit: %v", err)
	}
	if w.Balance != 1000.00 {
		t.Fatalf("wallet balance = %.2f, want 1000.00", w.Balance)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	walletRepo := NewWalletRepository(db)

	userID := "usr-rollback"
	sentinel := errors.New("boom")
	var loanID string

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		l := makeLoan(userID, loanDomain.StatusDisbursed)
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		loanID = l.LoanID
		if err := r.Wallets.Create(ctx, makeWalletDomain(userID, l.LoanID, l.Amount)); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// None should exist after rollback
	if _, err := loanRepo.GetByLoanID(ctx, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected loan not found after rollback, got %v", err)
	}
	if _, err := walletRepo.GetByUserAndLoan(ctx, userID, loanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected wallet not found after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLoanTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	walletRepo := NewWalletRepository(db)
	adminRepo := NewAdminRepository(db)

	userID := "usr-lock"
	adminID := id.NewID32()

	// Seed an approved loan (outside tx)
	seed := makeLoan(userID, loanDomain.StatusApproved)
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	// Execute WithinLoanTx: should fetch locked loan and pass to fn
	if err := guow.WithinLoanTx(ctx, seed.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		// Assert the fetched loan is correct and still approved
		if l == nil || l.LoanID != seed.LoanID || l.Status != loanDomain.StatusApproved {
			t.Fatalf("unexpected loan passed to fn: %+v", l)
		}

		// Disburse: open the wallet, flip the status, log the decision
		if err := r.Wallets.Create(ctx, makeWalletDomain(userID, l.LoanID, l.Amount)); err != nil {
			return err
		}
		now := time.Now().UTC()
		l.Status = loanDomain.StatusDisbursed
		l.DisbursementStatus = loanDomain.DisbursementCompleted
		l.DisbursedBy = adminID
		l.DisbursedAt = &now
		l.StatusUpdatedAt = now
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		return r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID: adminID, Action: "loan_disbursed", TargetID: l.LoanID,
		})
	}); err != nil {
		t.Fatalf("WithinLoanTx commit err: %v", err)
	}

	// Verify changes
	gotLoan, err := loanRepo.GetByLoanID(ctx, seed.LoanID)
	if err != nil {
		t.Fatalf("GetByLoanID post-commit: %v", err)
	}
	if gotLoan.Status != loanDomain.StatusDisbursed {
		t.Fatalf("loan status not updated, got=%s", gotLoan.Status)
	}
	if _, err := walletRepo.GetByUserAndLoan(ctx, userID, seed.LoanID); err != nil {
		t.Fatalf("wallet not visible after commit: %v", err)
	}
	acts, err := adminRepo.ListActionsByTarget(ctx, seed.LoanID, 5)
	if err != nil || len(acts) != 1 {
		t.Fatalf("action not visible after commit: %v (%d rows)", err, len(acts))
	}
}

func TestGormUoW_WithinLoanTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	loanRepo := NewLoanRepository(db)
	walletRepo := NewWalletRepository(db)

	userID := "usr-lock-rb"

	// Seed approved loan
	seed := makeLoan(userID, loanDomain.StatusApproved)
	if err := loanRepo.Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	sentinel := errors.New("stop")

	_ = guow.WithinLoanTx(ctx, seed.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		// Make changes inside tx
		if err := r.Wallets.Create(ctx, makeWalletDomain(userID, l.LoanID, l.Amount)); err != nil {
			return err
		}
		l.Status = loanDomain.StatusDisbursed
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	// After rollback: status unchanged, wallet absent
	gotLoan, err := loanRepo.GetByLoanID(ctx, seed.LoanID)
	if err != nil {
		t.Fatalf("post-rollback GetByLoanID: %v", err)
	}
	if gotLoan.Status != loanDomain.StatusApproved {
		t.Fatalf("expected approved after rollback, got %s", gotLoan.Status)
	}
	if _, err := walletRepo.GetByUserAndLoan(ctx, userID, seed.LoanID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected wallet absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinLoanTx_LoanNotFound(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)

	err := guow.WithinLoanTx(ctx, "no-such-loan", func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatalf("callback should not be called when loan missing")
		return nil
	})
	if err == nil {
		t.Fatalf("expected error when loan not found")
	}
}
