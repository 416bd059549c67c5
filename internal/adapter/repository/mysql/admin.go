package mysql

import (
	"context"

	adminDomain "kredinou/internal/domain/admin"

	"gorm.io/gorm"
)

type AdminRepository struct{ db *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{db: db} }

func (r *AdminRepository) Create(ctx context.Context, a *adminDomain.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AdminRepository) Save(ctx context.Context, a *adminDomain.Admin) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *AdminRepository) GetByAdminID(ctx context.Context, adminID string) (*adminDomain.Admin, error) {
	var out adminDomain.Admin
	res := r.db.WithContext(ctx).Where("admin_id = ?", adminID).First(&out)
	return &out, res.Error
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*adminDomain.Admin, error) {
	var out adminDomain.Admin
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *AdminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&adminDomain.Admin{}).Count(&n).Error
	return n, err
}

func (r *AdminRepository) LogAction(ctx context.Context, act *adminDomain.Action) error {
	return r.db.WithContext(ctx).Create(act).Error
}

func (r *AdminRepository) ListActionsByTarget(ctx context.Context, targetID string, limit int) ([]adminDomain.Action, error) {
	var out []adminDomain.Action
	err := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&out).Error
	return out, err
}
