package user

import (
	"context"
	"errors"
	"strings"
	"time"

	loanDomain "kredinou/internal/domain/loan"
	"kredinou/internal/domain/uow"
	userDomain "kredinou/internal/domain/user"
	"kredinou/pkg/id"
	"kredinou/pkg/password"
	"kredinou/pkg/token"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Usecase struct {
	users  userDomain.Repository
	loans  loanDomain.Repository
	uow    uow.UnitOfWork
	tokens *token.Issuer
}

func NewUsecase(users userDomain.Repository, loans loanDomain.Repository, tx uow.UnitOfWork, tokens *token.Issuer) *Usecase {
	return &Usecase{users: users, loans: loans, uow: tx, tokens: tokens}
}

type RegisterInput struct {
	FirstName    string
	MiddleName   string
	LastName     string
	Email        string
	Phone        string
	Password     string
	Department   string
	Commune      string
	Address      string
	FaceImageURL string
}

type UserDTO struct {
	UserID             string     `json:"user_id"`
	FirstName          string     `json:"first_name"`
	MiddleName         string     `json:"middle_name,omitempty"`
	LastName           string     `json:"last_name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	Department         string     `json:"department"`
	Commune            string     `json:"commune"`
	Address            string     `json:"address"`
	Status             string     `json:"status"`
	VerificationStatus string     `json:"verification_status"`
	LoanLimit          float64    `json:"loan_limit"`
	FaceImageURL       string     `json:"face_image_url,omitempty"`
	LastLogin          *time.Time `json:"last_login,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      UserDTO   `json:"user"`
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if len(in.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, userDomain.ErrDuplicateEmail
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if _, err := u.users.GetByPhone(ctx, phone); err == nil {
		return nil, userDomain.ErrDuplicatePhone
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	usr := &userDomain.User{
		UserID:             uuid.NewString(),
		FirstName:          strings.TrimSpace(in.FirstName),
		MiddleName:         strings.TrimSpace(in.MiddleName),
		LastName:           strings.TrimSpace(in.LastName),
		Email:              email,
		Phone:              phone,
		PasswordHash:       hash,
		Department:         in.Department,
		Commune:            in.Commune,
		Address:            in.Address,
		Status:             userDomain.StatusPendingVerification,
		VerificationStatus: userDomain.VerificationUnverified,
		LoanLimit:          userDomain.DefaultLoanLimit,
		FaceImageURL:       in.FaceImageURL,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return u.authResult(usr)
}

// Login accepts either the email address or the phone number.
func (u *Usecase) Login(ctx context.Context, identifier, plain string) (*AuthResult, error) {
	identifier = strings.TrimSpace(identifier)
	usr, err := u.users.GetByIdentifier(ctx, strings.ToLower(identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrBadCredentials
		}
		return nil, err
	}
	if !password.Verify(plain, usr.PasswordHash) {
		return nil, userDomain.ErrBadCredentials
	}
	now := time.Now().UTC()
	usr.LastLogin = &now
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	return u.authResult(usr)
}

func (u *Usecase) authResult(usr *userDomain.User) (*AuthResult, error) {
	tok, exp, err := u.tokens.Issue(usr.UserID, usr.Email, "user")
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: tok, ExpiresAt: exp, User: toDTO(usr)}, nil
}

func (u *Usecase) Profile(ctx context.Context, userID string) (*UserDTO, error) {
	usr, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	dto := toDTO(usr)
	return &dto, nil
}

func (u *Usecase) UpdatePhone(ctx context.Context, userID, phone string) (*UserDTO, error) {
	phone = strings.TrimSpace(phone)
	usr, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if other, err := u.users.GetByPhone(ctx, phone); err == nil && other.UserID != userID {
		return nil, userDomain.ErrDuplicatePhone
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	usr.Phone = phone
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	dto := toDTO(usr)
	return &dto, nil
}

func (u *Usecase) ChangePassword(ctx context.Context, userID, current, next string) error {
	if len(next) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	usr, err := u.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if !password.Verify(current, usr.PasswordHash) {
		return userDomain.ErrBadCredentials
	}
	hash, err := password.Hash(next)
	if err != nil {
		return err
	}
	usr.PasswordHash = hash
	return u.users.Save(ctx, usr)
}

type DocumentDTO struct {
	DocumentID   string     `json:"document_id"`
	DocumentType string     `json:"document_type"`
	URL          string     `json:"url"`
	Verified     bool       `json:"verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	UploadedAt   time.Time  `json:"uploaded_at"`
}

func (u *Usecase) AddDocument(ctx context.Context, userID, docType, url string) (*DocumentDTO, error) {
	if _, err := u.getUser(ctx, userID); err != nil {
		return nil, err
	}
	d := &userDomain.Document{
		DocumentID:   id.NewID32(),
		UserID:       userID,
		DocumentType: docType,
		URL:          url,
	}
	if err := u.users.CreateDocument(ctx, d); err != nil {
		return nil, err
	}
	dto := docDTO(d)
	return &dto, nil
}

func (u *Usecase) ListDocuments(ctx context.Context, userID string) ([]DocumentDTO, error) {
	ds, err := u.users.ListDocumentsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]DocumentDTO, 0, len(ds))
	for i := range ds {
		out = append(out, docDTO(&ds[i]))
	}
	return out, nil
}

type AdminUserItem struct {
	UserDTO
	LoanCount int64 `json:"loan_count"`
}

type AdminUserPage struct {
	Items []AdminUserItem `json:"items"`
	Total int64           `json:"total"`
}

func (u *Usecase) List(ctx context.Context, offset, limit int) (*AdminUserPage, error) {
	usrs, total, err := u.users.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	items := make([]AdminUserItem, 0, len(usrs))
	for i := range usrs {
		n, err := u.loans.CountByUserID(ctx, usrs[i].UserID)
		if err != nil {
			return nil, err
		}
		items = append(items, AdminUserItem{UserDTO: toDTO(&usrs[i]), LoanCount: n})
	}
	return &AdminUserPage{Items: items, Total: total}, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*AdminUserItem, error) {
	usr, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	n, err := u.loans.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AdminUserItem{UserDTO: toDTO(usr), LoanCount: n}, nil
}

// UpdateInput carries the admin-editable fields; nil means unchanged.
type UpdateInput struct {
	FirstName          *string
	MiddleName         *string
	LastName           *string
	Department         *string
	Commune            *string
	Address            *string
	Status             *string
	VerificationStatus *string
	LoanLimit          *float64
	FaceImageURL       *string
}

func (u *Usecase) Update(ctx context.Context, userID string, in UpdateInput) (*UserDTO, error) {
	usr, err := u.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		usr.FirstName = *in.FirstName
	}
	if in.MiddleName != nil {
		usr.MiddleName = *in.MiddleName
	}
	if in.LastName != nil {
		usr.LastName = *in.LastName
	}
	if in.Department != nil {
		usr.Department = *in.Department
	}
	if in.Commune != nil {
		usr.Commune = *in.Commune
	}
	if in.Address != nil {
		usr.Address = *in.Address
	}
	if in.Status != nil {
		usr.Status = userDomain.Status(*in.Status)
	}
	if in.VerificationStatus != nil {
		usr.VerificationStatus = userDomain.VerificationStatus(*in.VerificationStatus)
	}
	if in.LoanLimit != nil {
		usr.LoanLimit = *in.LoanLimit
	}
	if in.FaceImageURL != nil {
		usr.FaceImageURL = *in.FaceImageURL
	}
	if err := u.users.Save(ctx, usr); err != nil {
		return nil, err
	}
	dto := toDTO(usr)
	return &dto, nil
}

// Delete removes the user and everything hanging off the account in one
// transaction: loans, repayments, wallets, withdrawals, documents and
// notifications.
func (u *Usecase) Delete(ctx context.Context, userID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByUserID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrNotFound
			}
			return err
		}
		if err := r.Repayments.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := r.Withdrawals.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := r.Wallets.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := r.Loans.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := r.Notifications.DeleteByUserID(ctx, userID); err != nil {
			return err
		}
		if err := r.Users.DeleteDocumentsByUserID(ctx, userID); err != nil {
			return err
		}
		return r.Users.Delete(ctx, userID)
	})
}

func (u *Usecase) getUser(ctx context.Context, userID string) (*userDomain.User, error) {
	usr, err := u.users.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}
	return usr, nil
}

func toDTO(usr *userDomain.User) UserDTO {
	return UserDTO{
		UserID:             usr.UserID,
		FirstName:          usr.FirstName,
		MiddleName:         usr.MiddleName,
		LastName:           usr.LastName,
		Email:              usr.Email,
		Phone:              usr.Phone,
		Department:         usr.Department,
		Commune:            usr.Commune,
		Address:            usr.Address,
		Status:             string(usr.Status),
		VerificationStatus: string(usr.VerificationStatus),
		LoanLimit:          usr.LoanLimit,
		FaceImageURL:       usr.FaceImageURL,
		LastLogin:          usr.LastLogin,
		CreatedAt:          usr.CreatedAt,
	}
}

func docDTO(d *userDomain.Document) DocumentDTO {
	return DocumentDTO{
		DocumentID:   d.DocumentID,
		DocumentType: d.DocumentType,
		URL:          d.URL,
		Verified:     d.Verified,
		VerifiedAt:   d.VerifiedAt,
		UploadedAt:   d.UploadedAt,
	}
}
