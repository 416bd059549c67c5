package mysql

import (
	"context"

	walletDomain "kredinou/internal/domain/wallet"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WalletRepository struct{ db *gorm.DB }

func NewWalletRepository(db *gorm.DB) *WalletRepository { return &WalletRepository{db: db} }

func (r *WalletRepository) Create(ctx context.Context, w *walletDomain.Wallet) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WalletRepository) GetByWalletID(ctx context.Context, walletID string) (*walletDomain.Wallet, error) {
	var out walletDomain.Wallet
	res := r.db.WithContext(ctx).Where("wallet_id = ?", walletID).First(&out)
	return &out, res.Error
}

func (r *WalletRepository) GetByUserAndLoan(ctx context.Context, userID, loanID string) (*walletDomain.Wallet, error) {
	var out walletDomain.Wallet
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND loan_id = ?", userID, loanID).
		First(&out)
	return &out, res.Error
}

func (r *WalletRepository) ListByUserID(ctx context.Context, userID string) ([]walletDomain.Wallet, error) {
	var out []walletDomain.Wallet
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *WalletRepository) ListByUserIDForUpdate(ctx context.Context, userID string) ([]walletDomain.Wallet, error) {
	var out []walletDomain.Wallet
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

// Debit only succeeds when the wallet still covers the amount; the balance
// check and the subtraction happen in one statement.
func (r *WalletRepository) Debit(ctx context.Context, walletID string, amount float64) error {
	res := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where("wallet_id = ? AND balance >= ?", walletID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrInsufficientFunds
	}
	return nil
}

func (r *WalletRepository) Credit(ctx context.Context, walletID string, amount float64) error {
	res := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Where("wallet_id = ?", walletID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return walletDomain.ErrNotFound
	}
	return nil
}

func (r *WalletRepository) TotalByUserID(ctx context.Context, userID string) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&walletDomain.Wallet{}).
		Select("COALESCE(SUM(balance), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

func (r *WalletRepository) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&walletDomain.Wallet{}).Error
}
