package mysql

import (
	"context"

	userDomain "kredinou/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Save(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByPhone(ctx context.Context, phone string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("phone = ?", phone).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&out)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context, offset, limit int) ([]userDomain.User, int64, error) {
	base := r.db.WithContext(ctx).Model(&userDomain.User{})
	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []userDomain.User
	err := base.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&out).Error
	return out, total, err
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userDomain.User{}).Count(&n).Error
	return n, err
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&userDomain.User{}).Error
}

func (r *UserRepository) CreateDocument(ctx context.Context, d *userDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *UserRepository) SaveDocument(ctx context.Context, d *userDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *UserRepository) GetDocumentByID(ctx context.Context, documentID string) (*userDomain.Document, error) {
	var out userDomain.Document
	res := r.db.WithContext(ctx).Where("document_id = ?", documentID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) ListDocumentsByUserID(ctx context.Context, userID string) ([]userDomain.Document, error) {
	var out []userDomain.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (r *UserRepository) DeleteDocumentsByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&userDomain.Document{}).Error
}
