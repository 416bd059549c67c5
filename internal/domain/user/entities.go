package user

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusActive              Status = "active"
	StatusSuspended           Status = "suspended"
)

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "unverified"
	VerificationVerified   VerificationStatus = "verified"
)

// DefaultLoanLimit is granted to every new account until an admin raises it.
const DefaultLoanLimit = 100000

var (
	ErrNotFound         = errors.New("user not found")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicatePhone   = errors.New("phone already registered")
	ErrBadCredentials   = errors.New("invalid credentials")
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentVerified = errors.New("document already verified")
)

type User struct {
	ID                 uint64             `gorm:"primaryKey;column:id" json:"-"`
	UserID             string             `gorm:"size:36;uniqueIndex:ux_users_user_id_active" json:"user_id"`
	FirstName          string             `gorm:"size:100" json:"first_name"`
	MiddleName         string             `gorm:"size:100" json:"middle_name,omitempty"`
	LastName           string             `gorm:"size:100" json:"last_name"`
	Email              string             `gorm:"size:255;uniqueIndex:ux_users_email_active" json:"email"`
	Phone              string             `gorm:"size:20;uniqueIndex:ux_users_phone_active" json:"phone"`
	PasswordHash       string             `gorm:"column:password_hash;size:100" json:"-"`
	Department         string             `gorm:"size:100" json:"department"`
	Commune            string             `gorm:"size:100" json:"commune"`
	Address            string             `gorm:"type:text" json:"address"`
	Status             Status             `gorm:"type:enum('pending_verification','active','suspended');default:'pending_verification'" json:"status"`
	VerificationStatus VerificationStatus `gorm:"type:enum('unverified','verified');default:'unverified'" json:"verification_status"`
	LoanLimit          float64            `gorm:"type:decimal(18,2);default:100000" json:"loan_limit"`
	FaceImageURL       string             `gorm:"type:text" json:"face_image_url,omitempty"`
	LastLogin          *time.Time         `json:"last_login,omitempty"`
	CreatedAt          time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

func (u *User) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{u.FirstName, u.MiddleName, u.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Document is an identity or supporting file reference attached to a user.
// Files live in external storage; only the URL is kept here.
type Document struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"-"`
	DocumentID   string     `gorm:"size:32;uniqueIndex" json:"document_id"`
	UserID       string     `gorm:"size:36;index" json:"user_id"`
	DocumentType string     `gorm:"size:50" json:"document_type"`
	URL          string     `gorm:"type:text" json:"url"`
	Verified     bool       `gorm:"default:false" json:"verified"`
	VerifiedBy   string     `gorm:"size:32" json:"verified_by,omitempty"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
	UploadedAt   time.Time  `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Document) TableName() string { return "user_documents" }
