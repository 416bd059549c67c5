package wallet

import (
	"context"
	"errors"

	loanDomain "kredinou/internal/domain/loan"
	"kredinou/internal/domain/uow"
	walletDomain "kredinou/internal/domain/wallet"
	"kredinou/pkg/id"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type BalanceDTO struct {
	WalletID string  `json:"wallet_id"`
	LoanID   string  `json:"loan_id"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

type SyncResult struct {
	Wallets      []BalanceDTO `json:"wallets"`
	TotalBalance float64      `json:"total_balance"`
	Currency     string       `json:"currency"`
}

// Sync makes sure every loan of the user with a completed disbursement has
// its wallet, then reports the balances. Existing wallets are never
// re-credited, so calling this any number of times changes nothing after
// the first.
func (u *Usecase) Sync(ctx context.Context, userID string) (*SyncResult, error) {
	var out *SyncResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		loans, err := r.Loans.ListCompletedDisbursementsByUserID(ctx, userID)
		if err != nil {
			return err
		}
		for i := range loans {
			l := &loans[i]
			_, err := r.Wallets.GetByUserAndLoan(ctx, userID, l.LoanID)
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			w := &walletDomain.Wallet{
				WalletID: id.NewID32(),
				UserID:   userID,
				LoanID:   l.LoanID,
				Balance:  l.Amount,
				Currency: currencyOf(l),
			}
			if err := r.Wallets.Create(ctx, w); err != nil {
				return err
			}
		}

		ws, err := r.Wallets.ListByUserID(ctx, userID)
		if err != nil {
			return err
		}
		res := &SyncResult{Wallets: make([]BalanceDTO, 0, len(ws)), Currency: loanDomain.DefaultCurrency}
		total := decimal.Zero
		for _, w := range ws {
			res.Wallets = append(res.Wallets, BalanceDTO{
				WalletID: w.WalletID,
				LoanID:   w.LoanID,
				Balance:  w.Balance,
				Currency: w.Currency,
			})
			total = total.Add(decimal.NewFromFloat(w.Balance))
		}
		res.TotalBalance = total.InexactFloat64()
		out = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func currencyOf(l *loanDomain.Loan) string {
	if l.Currency != "" {
		return l.Currency
	}
	return loanDomain.DefaultCurrency
}
