package uow

import (
	"context"

	"kredinou/internal/domain/admin"
	"kredinou/internal/domain/loan"
	"kredinou/internal/domain/notification"
	"kredinou/internal/domain/repayment"
	"kredinou/internal/domain/user"
	"kredinou/internal/domain/wallet"
	"kredinou/internal/domain/withdrawal"
)

// Repos bundles every repository bound to one transaction.
type Repos struct {
	Users         user.Repository
	Admins        admin.Repository
	Loans         loan.Repository
	Repayments    repayment.Repository
	Wallets       wallet.Repository
	Withdrawals   withdrawal.Repository
	Notifications notification.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
