package dashboard

import (
	"context"
	"encoding/json"
	"time"

	loanDomain "kredinou/internal/domain/loan"
	repaymentDomain "kredinou/internal/domain/repayment"
	"kredinou/internal/domain/stats"
	userDomain "kredinou/internal/domain/user"
	withdrawalDomain "kredinou/internal/domain/withdrawal"

	"github.com/redis/go-redis/v9"
)

const summaryKey = "dashboard:summary"

type Usecase struct {
	users       userDomain.Repository
	loans       loanDomain.Repository
	repayments  repaymentDomain.Repository
	withdrawals withdrawalDomain.Repository
	rdb         *redis.Client
	ttl         time.Duration
}

// NewUsecase takes a nil redis client to run uncached.
func NewUsecase(
	users userDomain.Repository,
	loans loanDomain.Repository,
	repayments repaymentDomain.Repository,
	withdrawals withdrawalDomain.Repository,
	rdb *redis.Client,
	ttl time.Duration,
) *Usecase {
	return &Usecase{
		users:       users,
		loans:       loans,
		repayments:  repayments,
		withdrawals: withdrawals,
		rdb:         rdb,
		ttl:         ttl,
	}
}

type Summary struct {
	TotalUsers      int64   `json:"total_users"`
	TotalLoans      int64   `json:"total_loans"`
	TotalLoanAmount float64 `json:"total_loan_amount"`
	TotalRepaid     float64 `json:"total_repaid"`
	TotalWithdrawn  float64 `json:"total_withdrawn"`
	GeneratedAt     string  `json:"generated_at"`
}

func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	if u.rdb != nil {
		if raw, err := u.rdb.Get(ctx, summaryKey).Bytes(); err == nil {
			var s Summary
			if json.Unmarshal(raw, &s) == nil {
				return &s, nil
			}
		}
	}

	s := &Summary{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}
	var err error
	if s.TotalUsers, err = u.users.Count(ctx); err != nil {
		return nil, err
	}
	if s.TotalLoans, s.TotalLoanAmount, err = u.loans.CountAndTotal(ctx); err != nil {
		return nil, err
	}
	if s.TotalRepaid, err = u.repayments.TotalVerified(ctx); err != nil {
		return nil, err
	}
	if s.TotalWithdrawn, err = u.withdrawals.SumAmountByStatus(ctx, withdrawalDomain.StatusApproved); err != nil {
		return nil, err
	}

	if u.rdb != nil {
		if raw, err := json.Marshal(s); err == nil {
			_ = u.rdb.Set(ctx, summaryKey, raw, u.ttl).Err()
		}
	}
	return s, nil
}

type ChartData struct {
	Days        int                `json:"days"`
	Loans       []stats.DailyTotal `json:"loans"`
	Repayments  []stats.DailyTotal `json:"repayments"`
	Withdrawals []stats.DailyTotal `json:"withdrawals"`
}

func (u *Usecase) Chart(ctx context.Context, days int) (*ChartData, error) {
	if days <= 0 || days > 365 {
		days = 30
	}
	since := time.Now().UTC().AddDate(0, 0, -days)
	out := &ChartData{Days: days}
	var err error
	if out.Loans, err = u.loans.DailyTotals(ctx, since); err != nil {
		return nil, err
	}
	if out.Repayments, err = u.repayments.DailyTotals(ctx, since); err != nil {
		return nil, err
	}
	if out.Withdrawals, err = u.withdrawals.DailyTotals(ctx, since); err != nil {
		return nil, err
	}
	return out, nil
}
