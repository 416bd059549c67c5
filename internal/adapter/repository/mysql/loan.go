package mysql

import (
	"context"
	"time"

	loanDomain "kredinou/internal/domain/loan"
	"kredinou/internal/domain/stats"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetOpenLoanByUserID(ctx context.Context, userID string) (*loanDomain.Loan, error) {
	open := []loanDomain.Status{
		loanDomain.StatusPending,
		loanDomain.StatusApproved,
		loanDomain.StatusDisbursed,
		loanDomain.StatusOverdue,
	}
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID, open).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetLatestActiveByUserID(ctx context.Context, userID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID,
			[]loanDomain.Status{loanDomain.StatusApproved, loanDomain.StatusDisbursed}).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]loanDomain.Loan, int64, error) {
	base := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("user_id = ?", userID)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []loanDomain.Loan
	err := base.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status, offset, limit int) ([]loanDomain.Loan, int64, error) {
	base := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("status = ?", status)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []loanDomain.Loan
	err := base.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *LoanRepository) ListCompletedDisbursementsByUserID(ctx context.Context, userID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND disbursement_status = ?", userID, loanDomain.DisbursementCompleted).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) CountByUserID(ctx context.Context, userID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (r *LoanRepository) CountByStatus(ctx context.Context, status loanDomain.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *LoanRepository) CountAndTotal(ctx context.Context) (int64, float64, error) {
	var row struct {
		N     int64
		Total float64
	}
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("COUNT(*) AS n, COALESCE(SUM(amount), 0) AS total").
		Scan(&row).Error
	return row.N, row.Total, err
}

func (r *LoanRepository) SumApprovedUndisbursed(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ? AND disbursement_status <> ?",
			loanDomain.StatusApproved, loanDomain.DisbursementCompleted).
		Scan(&total).Error
	return total, err
}

func (r *LoanRepository) DisbursedTotalsByCurrency(ctx context.Context) ([]stats.CurrencyTotal, error) {
	var out []stats.CurrencyTotal
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("currency, COALESCE(SUM(amount), 0) AS total").
		Where("disbursement_status = ?", loanDomain.DisbursementCompleted).
		Group("currency").
		Scan(&out).Error
	return out, err
}

func (r *LoanRepository) DailyTotals(ctx context.Context, since time.Time) ([]stats.DailyTotal, error) {
	var out []stats.DailyTotal
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&out).Error
	return out, err
}

func (r *LoanRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&loanDomain.Loan{}).Error
}
