package mysql

import (
	"context"
	"time"

	"kredinou/internal/domain/stats"
	withdrawalDomain "kredinou/internal/domain/withdrawal"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WithdrawalRepository struct{ db *gorm.DB }

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func (r *WithdrawalRepository) Create(ctx context.Context, w *withdrawalDomain.Withdrawal) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WithdrawalRepository) Save(ctx context.Context, w *withdrawalDomain.Withdrawal) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *WithdrawalRepository) GetByWithdrawalID(ctx context.Context, withdrawalID string) (*withdrawalDomain.Withdrawal, error) {
	var out withdrawalDomain.Withdrawal
	res := r.db.WithContext(ctx).Where("withdrawal_id = ?", withdrawalID).First(&out)
	return &out, res.Error
}

func (r *WithdrawalRepository) GetByWithdrawalIDForUpdate(ctx context.Context, withdrawalID string) (*withdrawalDomain.Withdrawal, error) {
	var out withdrawalDomain.Withdrawal
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("withdrawal_id = ?", withdrawalID).
		First(&out)
	return &out, res.Error
}

func (r *WithdrawalRepository) ListByUserID(ctx context.Context, userID string) ([]withdrawalDomain.Withdrawal, error) {
	var out []withdrawalDomain.Withdrawal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *WithdrawalRepository) ListByStatus(ctx context.Context, status withdrawalDomain.Status, offset, limit int) ([]withdrawalDomain.Withdrawal, int64, error) {
	base := r.db.WithContext(ctx).Model(&withdrawalDomain.Withdrawal{}).Where("status = ?", status)
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []withdrawalDomain.Withdrawal
	err := base.Order("created_at ASC, id ASC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *WithdrawalRepository) CountByStatus(ctx context.Context, status withdrawalDomain.Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&withdrawalDomain.Withdrawal{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *WithdrawalRepository) SumAmountByStatus(ctx context.Context, status withdrawalDomain.Status) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&withdrawalDomain.Withdrawal{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("status = ?", status).
		Scan(&total).Error
	return total, err
}

func (r *WithdrawalRepository) AddDeductions(ctx context.Context, ds []withdrawalDomain.Deduction) error {
	if len(ds) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&ds).Error
}

func (r *WithdrawalRepository) ListDeductions(ctx context.Context, withdrawalID string) ([]withdrawalDomain.Deduction, error) {
	var out []withdrawalDomain.Deduction
	err := r.db.WithContext(ctx).
		Where("withdrawal_id = ?", withdrawalID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *WithdrawalRepository) DailyTotals(ctx context.Context, since time.Time) ([]stats.DailyTotal, error) {
	var out []stats.DailyTotal
	err := r.db.WithContext(ctx).Model(&withdrawalDomain.Withdrawal{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&out).Error
	return out, err
}

func (r *WithdrawalRepository) DeleteByUserID(ctx context.Context, userID string) error {
	sub := r.db.WithContext(ctx).Model(&withdrawalDomain.Withdrawal{}).
		Select("withdrawal_id").
		Where("user_id = ?", userID)
	if err := r.db.WithContext(ctx).
		Where("withdrawal_id IN (?)", sub).
		Delete(&withdrawalDomain.Deduction{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&withdrawalDomain.Withdrawal{}).Error
}
