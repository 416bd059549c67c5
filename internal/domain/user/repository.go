package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	Save(ctx context.Context, u *User) error
	GetByUserID(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByPhone(ctx context.Context, phone string) (*User, error)
	// GetByIdentifier resolves a login identifier that may be either an
	// email address or a phone number.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	List(ctx context.Context, offset, limit int) ([]User, int64, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, userID string) error

	CreateDocument(ctx context.Context, d *Document) error
	SaveDocument(ctx context.Context, d *Document) error
	GetDocumentByID(ctx context.Context, documentID string) (*Document, error)
	ListDocumentsByUserID(ctx context.Context, userID string) ([]Document, error)
	DeleteDocumentsByUserID(ctx context.Context, userID string) error
}
