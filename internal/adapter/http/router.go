package http

import (
	"time"

	mw "kredinou/internal/adapter/middleware"
	"kredinou/pkg/token"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

// Deps carries everything the route table needs.
type Deps struct {
	Health     *Handler
	Auth       *AuthHandler
	Users      *UserHandler
	Loans      *LoanHandler
	Repayments *RepaymentHandler
	Wallets    *WalletHandler
	Withdrawal *WithdrawalHandler
	Admin      *AdminHandler
	Dashboard  *DashboardHandler

	UserTokens  *token.Issuer
	AdminTokens *token.Issuer

	Redis    *redis.Client
	IdempTTL time.Duration

	CORSOrigins []string
}

func RegisterRoutes(e *echo.Echo, d Deps) {
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: d.CORSOrigins,
		AllowHeaders: []string{
			echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization,
			"Ax-Request-Id", "Ax-Request-At",
		},
	}))
	e.Validator = NewValidator()

	e.GET("/health", d.Health.Health)

	api := e.Group("/api")
	api.POST("/auth/register", d.Auth.Register)
	api.POST("/auth/login", d.Auth.Login)
	api.POST("/admin/auth/login", d.Admin.Login)

	// Authenticated borrower surface. Mutations replay through the
	// idempotency store.
	usr := api.Group("", mw.UserAuth(d.UserTokens))
	if d.Redis != nil {
		usr.Use(mw.IdempotencyMiddleware(d.Redis, d.IdempTTL))
	}

	usr.GET("/user/profile", d.Users.Profile)
	usr.PUT("/user/phone", d.Users.UpdatePhone)
	usr.PUT("/user/password", d.Users.ChangePassword)
	usr.POST("/user/documents", d.Users.AddDocument)
	usr.GET("/user/documents", d.Users.Documents)
	usr.GET("/user/notifications", d.Users.Notifications)
	usr.PUT("/user/notifications/:notification_id/read", d.Users.ReadNotification)

	usr.POST("/loans/apply", d.Loans.Apply)
	usr.GET("/loans/history", d.Loans.History)
	usr.GET("/loans/active", d.Loans.Active)
	usr.GET("/loans/:loan_id", d.Loans.Get)
	usr.GET("/loans/:loan_id/repayment-status", d.Repayments.LoanStatus)

	usr.POST("/repayments", d.Repayments.Submit)
	usr.GET("/repayments/history", d.Repayments.History)

	usr.GET("/wallet/balance", d.Wallets.Balance)

	usr.POST("/withdrawals", d.Withdrawal.Request)
	usr.GET("/withdrawals/history", d.Withdrawal.History)

	adm := api.Group("/admin", mw.AdminAuth(d.AdminTokens))

	adm.PUT("/auth/credentials", d.Admin.ChangeCredentials)

	adm.GET("/users", d.Users.AdminList)
	adm.GET("/users/:user_id", d.Users.AdminGet)
	adm.PUT("/users/:user_id", d.Users.AdminUpdate)
	adm.DELETE("/users/:user_id", d.Users.AdminDelete)
	adm.POST("/documents/:document_id/verify", d.Admin.VerifyDocument)

	adm.GET("/loans", d.Loans.AdminList)
	adm.GET("/loans/stats/pending-disbursements", d.Loans.PendingDisbursements)
	adm.GET("/loans/stats/disbursed-totals", d.Loans.DisbursedTotals)
	adm.GET("/loans/:loan_id", d.Loans.AdminGet)
	adm.POST("/loans/:loan_id/approve", d.Loans.Approve)
	adm.POST("/loans/:loan_id/reject", d.Loans.Reject)
	adm.POST("/loans/:loan_id/disburse", d.Loans.Disburse)
	adm.PUT("/loans/:loan_id/status", d.Loans.UpdateStatus)

	adm.GET("/repayments/pending", d.Repayments.AdminPending)
	adm.GET("/repayments/loan/:loan_id", d.Repayments.AdminLoanStatus)
	adm.POST("/repayments/:repayment_id/verify", d.Repayments.Verify)
	adm.POST("/repayments/:repayment_id/reject", d.Repayments.Reject)

	adm.GET("/withdrawals", d.Withdrawal.AdminList)
	adm.GET("/withdrawals/summary", d.Withdrawal.AdminSummary)
	adm.POST("/withdrawals/:withdrawal_id/approve", d.Withdrawal.Approve)
	adm.POST("/withdrawals/:withdrawal_id/reject", d.Withdrawal.Reject)

	adm.GET("/dashboard/summary", d.Dashboard.Summary)
	adm.GET("/dashboard/chart-data", d.Dashboard.Chart)
}
