package mysql

import (
	"testing"
	"time"

	adminDomain "kredinou/internal/domain/admin"
	loanDomain "kredinou/internal/domain/loan"
	userDomain "kredinou/internal/domain/user"
	walletDomain "kredinou/internal/domain/wallet"
	withdrawalDomain "kredinou/internal/domain/withdrawal"
	"kredinou/pkg/id"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM columns) ---

type userSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	UserID             string         `gorm:"size:36;column:user_id"`
	FirstName          string         `gorm:"column:first_name"`
	MiddleName         string         `gorm:"column:middle_name"`
	LastName           string         `gorm:"column:last_name"`
	Email              string         `gorm:"column:email"`
	Phone              string         `gorm:"column:phone"`
	PasswordHash       string         `gorm:"column:password_hash"`
	Department         string         `gorm:"column:department"`
	Commune            string         `gorm:"column:commune"`
	Address            string         `gorm:"column:address"`
	Status             string         `gorm:"type:text;column:status"`
	VerificationStatus string         `gorm:"type:text;column:verification_status"`
	LoanLimit          float64        `gorm:"column:loan_limit"`
	FaceImageURL       string         `gorm:"column:face_image_url"`
	LastLogin          *time.Time     `gorm:"column:last_login"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

type adminSQLite struct {
	ID           uint64     `gorm:"primaryKey;column:id"`
	AdminID      string     `gorm:"size:32;column:admin_id"`
	Email        string     `gorm:"column:email"`
	PasswordHash string     `gorm:"column:password_hash"`
	Role         string     `gorm:"type:text;column:role"`
	LastLogin    *time.Time `gorm:"column:last_login"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (adminSQLite) TableName() string { return "admins" }

type loanSQLite struct {
	ID                 uint64         `gorm:"primaryKey;column:id"`
	LoanID             string         `gorm:"size:32;column:loan_id"`
	UserID             string         `gorm:"size:36;column:user_id"`
	LoanType           string         `gorm:"column:loan_type"`
	Amount             float64        `gorm:"column:amount"`
	Purpose            string         `gorm:"column:purpose"`
	RepaymentPeriod    string         `gorm:"column:repayment_period"`
	PeriodDays         int            `gorm:"column:period_days"`
	DisbursementMethod string         `gorm:"column:disbursement_method"`
	AccountName        string         `gorm:"column:account_name"`
	AccountNumber      string         `gorm:"column:account_number"`
	QRCodeRef          string         `gorm:"column:qr_code_ref"`
	ApplicationDate    time.Time      `gorm:"column:application_date"`
	DueDate            time.Time      `gorm:"column:due_date"`
	Status             string         `gorm:"type:text;column:status"`
	DisbursementStatus string         `gorm:"column:disbursement_status"`
	DisbursementTxID   string         `gorm:"column:disbursement_tx_id"`
	Currency           string         `gorm:"column:currency"`
	ApprovedBy         string         `gorm:"column:approved_by"`
	ApprovedAt         *time.Time     `gorm:"column:approved_at"`
	ApprovalNotes      string         `gorm:"column:approval_notes"`
	RejectedBy         string         `gorm:"column:rejected_by"`
	RejectedAt         *time.Time     `gorm:"column:rejected_at"`
	RejectionReason    string         `gorm:"column:rejection_reason"`
	DisbursedBy        string         `gorm:"column:disbursed_by"`
	DisbursedAt        *time.Time     `gorm:"column:disbursed_at"`
	StatusUpdatedAt    time.Time      `gorm:"column:status_updated_at"`
	CreatedAt          time.Time      `gorm:"column:created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type repaymentSQLite struct {
	ID              uint64         `gorm:"primaryKey;column:id"`
	RepaymentID     string         `gorm:"size:32;column:repayment_id"`
	LoanID          string         `gorm:"size:32;column:loan_id"`
	UserID          string         `gorm:"size:36;column:user_id"`
	Amount          float64        `gorm:"column:amount"`
	Method          string         `gorm:"column:method"`
	Reference       string         `gorm:"column:reference"`
	ProofURL        string         `gorm:"column:proof_url"`
	Status          string         `gorm:"type:text;column:status"`
	RejectionReason string         `gorm:"column:rejection_reason"`
	VerifiedBy      string         `gorm:"column:verified_by"`
	VerifiedAt      *time.Time     `gorm:"column:verified_at"`
	CreatedAt       time.Time      `gorm:"column:created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (repaymentSQLite) TableName() string { return "repayments" }

type withdrawalSQLite struct {
	ID            uint64     `gorm:"primaryKey;column:id"`
	WithdrawalID  string     `gorm:"size:32;column:withdrawal_id"`
	UserID        string     `gorm:"size:36;column:user_id"`
	Amount        float64    `gorm:"column:amount"`
	Service       string     `gorm:"column:service"`
	AccountName   string     `gorm:"column:account_name"`
	AccountNumber string     `gorm:"column:account_number"`
	Status        string     `gorm:"type:text;column:status"`
	AdminNotes    string     `gorm:"column:admin_notes"`
	DecidedBy     string     `gorm:"column:decided_by"`
	DecidedAt     *time.Time `gorm:"column:decided_at"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (withdrawalSQLite) TableName() string { return "withdrawals" }

type notificationSQLite struct {
	ID             uint64    `gorm:"primaryKey;column:id"`
	NotificationID string    `gorm:"size:32;column:notification_id"`
	UserID         string    `gorm:"size:36;column:user_id"`
	Type           string    `gorm:"column:type"`
	Message        string    `gorm:"column:message"`
	Status         string    `gorm:"type:text;column:status"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationSQLite) TableName() string { return "notifications" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas. Tables without ENUM columns use the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userSQLite{}, &userDomain.Document{},
		&adminSQLite{}, &adminDomain.Action{},
		&loanSQLite{},
		&repaymentSQLite{},
		&walletDomain.Wallet{},
		&withdrawalSQLite{}, &withdrawalDomain.Deduction{},
		&notificationSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLoan(userID string, status loanDomain.Status) *loanDomain.Loan {
	now := time.Now().UTC()
	return &loanDomain.Loan{
		LoanID:             id.NewID32(),
		UserID:             userID,
		LoanType:           "personal",
		Amount:             1000.00,
		Purpose:            "inventory",
		RepaymentPeriod:    "1 Month",
		PeriodDays:         30,
		DisbursementMethod: loanDomain.MethodMonCash,
		AccountName:        "Ti Jan",
		AccountNumber:      "50937001122",
		ApplicationDate:    now,
		DueDate:            now.AddDate(0, 0, 30),
		Status:             status,
		Currency:           loanDomain.DefaultCurrency,
		StatusUpdatedAt:    now,
	}
}

func makeUser(email, phone string) *userDomain.User {
	return &userDomain.User{
		UserID:             uuid.NewString(),
		FirstName:          "Marie",
		LastName:           "Joseph",
		Email:              email,
		Phone:              phone,
		PasswordHash:       "x",
		Status:             userDomain.StatusPendingVerification,
		VerificationStatus: userDomain.VerificationUnverified,
		LoanLimit:          userDomain.DefaultLoanLimit,
	}
}
