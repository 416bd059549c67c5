package mysql

import (
	"context"
	"time"

	repaymentDomain "kredinou/internal/domain/repayment"
	"kredinou/internal/domain/stats"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RepaymentRepository struct{ db *gorm.DB }

func NewRepaymentRepository(db *gorm.DB) *RepaymentRepository { return &RepaymentRepository{db: db} }

func (r *RepaymentRepository) Create(ctx context.Context, p *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *RepaymentRepository) Save(ctx context.Context, p *repaymentDomain.Repayment) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *RepaymentRepository) GetByRepaymentID(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).Where("repayment_id = ?", repaymentID).First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) GetByRepaymentIDForUpdate(ctx context.Context, repaymentID string) (*repaymentDomain.Repayment, error) {
	var out repaymentDomain.Repayment
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("repayment_id = ?", repaymentID).
		First(&out)
	return &out, res.Error
}

func (r *RepaymentRepository) ListByLoanID(ctx context.Context, loanID string) ([]repaymentDomain.Repayment, error) {
	var out []repaymentDomain.Repayment
	err := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *RepaymentRepository) ListByUserID(ctx context.Context, userID string, offset, limit int) ([]repaymentDomain.Repayment, int64, error) {
	base := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).Where("user_id = ?", userID)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []repaymentDomain.Repayment
	err := base.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *RepaymentRepository) ListByStatus(ctx context.Context, status repaymentDomain.Status, offset, limit int) ([]repaymentDomain.Repayment, int64, error) {
	base := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).Where("status = ?", status)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []repaymentDomain.Repayment
	err := base.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *RepaymentRepository) SumVerifiedByLoanID(ctx context.Context, loanID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("loan_id = ? AND status = ?", loanID, repaymentDomain.StatusVerified).
		Scan(&total).Error
	return total, err
}

func (r *RepaymentRepository) CountPendingByLoanID(ctx context.Context, loanID string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).
		Where("loan_id = ? AND status = ?", loanID, repaymentDomain.StatusPendingVerification).
		Count(&n).Error
	return n, err
}

func (r *RepaymentRepository) TotalVerified(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", repaymentDomain.StatusVerified).
		Scan(&total).Error
	return total, err
}

func (r *RepaymentRepository) DailyTotals(ctx context.Context, since time.Time) ([]stats.DailyTotal, error) {
	var out []stats.DailyTotal
	err := r.db.WithContext(ctx).Model(&repaymentDomain.Repayment{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&out).Error
	return out, err
}

func (r *RepaymentRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&repaymentDomain.Repayment{}).Error
}
