package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	adminDomain "kredinou/internal/domain/admin"
	notificationDomain "kredinou/internal/domain/notification"
	"kredinou/internal/domain/uow"
	userDomain "kredinou/internal/domain/user"
	"kredinou/pkg/id"
	"kredinou/pkg/password"
	"kredinou/pkg/token"

	"gorm.io/gorm"
)

type Usecase struct {
	admins adminDomain.Repository
	uow    uow.UnitOfWork
	tokens *token.Issuer
	pepper string
}

func NewUsecase(admins adminDomain.Repository, tx uow.UnitOfWork, tokens *token.Issuer, pepper string) *Usecase {
	return &Usecase{admins: admins, uow: tx, tokens: tokens, pepper: pepper}
}

// SeedInitial creates the first superadmin account when the table is empty.
// A blank seed password disables seeding.
func (u *Usecase) SeedInitial(ctx context.Context, email, plain string) error {
	if plain == "" {
		return nil
	}
	n, err := u.admins.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := password.Hash(plain + u.pepper)
	if err != nil {
		return err
	}
	a := &adminDomain.Admin{
		AdminID:      id.NewID32(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		Role:         adminDomain.RoleSuperadmin,
	}
	if err := u.admins.Create(ctx, a); err != nil {
		return err
	}
	log.Printf("admin: seeded initial superadmin %s", a.Email)
	return nil
}

type AdminDTO struct {
	AdminID   string     `json:"admin_id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     AdminDTO  `json:"admin"`
}

func (u *Usecase) Login(ctx context.Context, email, plain string) (*AuthResult, error) {
	a, err := u.admins.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminDomain.ErrBadCredentials
		}
		return nil, err
	}
	if !password.Verify(plain+u.pepper, a.PasswordHash) {
		return nil, adminDomain.ErrBadCredentials
	}
	now := time.Now().UTC()
	a.LastLogin = &now
	if err := u.admins.Save(ctx, a); err != nil {
		return nil, err
	}
	tok, exp, err := u.tokens.Issue(a.AdminID, a.Email, string(a.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{
		Token:     tok,
		ExpiresAt: exp,
		Admin:     AdminDTO{AdminID: a.AdminID, Email: a.Email, Role: string(a.Role), LastLogin: a.LastLogin},
	}, nil
}

type ChangeCredentialsInput struct {
	AdminID         string
	CurrentPassword string
	NewEmail        string
	NewPassword     string
}

func (u *Usecase) ChangeCredentials(ctx context.Context, in ChangeCredentialsInput) (*AdminDTO, error) {
	a, err := u.admins.GetByAdminID(ctx, in.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, adminDomain.ErrNotFound
		}
		return nil, err
	}
	if !password.Verify(in.CurrentPassword+u.pepper, a.PasswordHash) {
		return nil, adminDomain.ErrBadCredentials
	}

	if in.NewEmail != "" {
		email := strings.ToLower(strings.TrimSpace(in.NewEmail))
		if other, err := u.admins.GetByEmail(ctx, email); err == nil && other.AdminID != a.AdminID {
			return nil, errors.New("email already in use")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		a.Email = email
	}
	if in.NewPassword != "" {
		if len(in.NewPassword) < 12 {
			return nil, errors.New("password must be at least 12 characters")
		}
		hash, err := password.Hash(in.NewPassword + u.pepper)
		if err != nil {
			return nil, err
		}
		a.PasswordHash = hash
	}
	if err := u.admins.Save(ctx, a); err != nil {
		return nil, err
	}
	return &AdminDTO{AdminID: a.AdminID, Email: a.Email, Role: string(a.Role), LastLogin: a.LastLogin}, nil
}

type DocumentDTO struct {
	DocumentID   string     `json:"document_id"`
	UserID       string     `json:"user_id"`
	DocumentType string     `json:"document_type"`
	URL          string     `json:"url"`
	Verified     bool       `json:"verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
}

// VerifyDocument marks a user document verified once; the owner gets a
// notification and the decision lands in the audit log.
func (u *Usecase) VerifyDocument(ctx context.Context, adminID, documentID string) (*DocumentDTO, error) {
	var out *DocumentDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		d, err := r.Users.GetDocumentByID(ctx, documentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrDocumentNotFound
			}
			return err
		}
		if d.Verified {
			return userDomain.ErrDocumentVerified
		}
		now := time.Now().UTC()
		d.Verified = true
		d.VerifiedBy = adminID
		d.VerifiedAt = &now
		if err := r.Users.SaveDocument(ctx, d); err != nil {
			return err
		}
		if err := r.Admins.LogAction(ctx, &adminDomain.Action{
			AdminID:  adminID,
			Action:   "document_verified",
			TargetID: d.DocumentID,
			Details:  fmt.Sprintf(`{"user_id":%q,"document_type":%q}`, d.UserID, d.DocumentType),
		}); err != nil {
			return err
		}
		if err := r.Notifications.Create(ctx, &notificationDomain.Notification{
			NotificationID: id.NewID32(),
			UserID:         d.UserID,
			Type:           notificationDomain.TypeDocumentVerified,
			Message:        fmt.Sprintf("Your %s document has been verified", d.DocumentType),
		}); err != nil {
			return err
		}
		out = &DocumentDTO{
			DocumentID:   d.DocumentID,
			UserID:       d.UserID,
			DocumentType: d.DocumentType,
			URL:          d.URL,
			Verified:     d.Verified,
			VerifiedAt:   d.VerifiedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
