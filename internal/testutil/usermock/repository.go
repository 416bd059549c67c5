package usermock

import (
	"context"

	domain "kredinou/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Fill in the fields a test needs; unfilled getters fail loudly.
type Repo struct {
	CreateFn          func(ctx context.Context, u *domain.User) error
	SaveFn            func(ctx context.Context, u *domain.User) error
	GetByUserIDFn     func(ctx context.Context, userID string) (*domain.User, error)
	GetByEmailFn      func(ctx context.Context, email string) (*domain.User, error)
	GetByPhoneFn      func(ctx context.Context, phone string) (*domain.User, error)
	GetByIdentifierFn func(ctx context.Context, identifier string) (*domain.User, error)
	ListFn            func(ctx context.Context, offset, limit int) ([]domain.User, int64, error)
	CountFn           func(ctx context.Context) (int64, error)
	DeleteFn          func(ctx context.Context, userID string) error

	CreateDocumentFn          func(ctx context.Context, d *domain.Document) error
	SaveDocumentFn            func(ctx context.Context, d *domain.Document) error
	GetDocumentByIDFn         func(ctx context.Context, documentID string) (*domain.Document, error)
	ListDocumentsByUserIDFn   func(ctx context.Context, userID string) ([]domain.Document, error)
	DeleteDocumentsByUserIDFn func(ctx context.Context, userID string) error
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *Repo) Save(ctx context.Context, u *domain.User) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, u)
	}
	return nil
}
func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.User, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	if m.GetByIdentifierFn != nil {
		return m.GetByIdentifierFn(ctx, identifier)
	}
	return nil, context.Canceled
}
func (m *Repo) List(ctx context.Context, offset, limit int) ([]domain.User, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, offset, limit)
	}
	return nil, 0, context.Canceled
}
func (m *Repo) Count(ctx context.Context) (int64, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, context.Canceled
}
func (m *Repo) Delete(ctx context.Context, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil
}

func (m *Repo) CreateDocument(ctx context.Context, d *domain.Document) error {
	if m.CreateDocumentFn != nil {
		return m.CreateDocumentFn(ctx, d)
	}
	return nil
}
func (m *Repo) SaveDocument(ctx context.Context, d *domain.Document) error {
	if m.SaveDocumentFn != nil {
		return m.SaveDocumentFn(ctx, d)
	}
	return nil
}
func (m *Repo) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	if m.GetDocumentByIDFn != nil {
		return m.GetDocumentByIDFn(ctx, documentID)
	}
	return nil, context.Canceled
}
func (m *Repo) ListDocumentsByUserID(ctx context.Context, userID string) ([]domain.Document, error) {
	if m.ListDocumentsByUserIDFn != nil {
		return m.ListDocumentsByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
func (m *Repo) DeleteDocumentsByUserID(ctx context.Context, userID string) error {
	if m.DeleteDocumentsByUserIDFn != nil {
		return m.DeleteDocumentsByUserIDFn(ctx, userID)
	}
	return nil
}
