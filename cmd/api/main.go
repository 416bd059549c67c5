package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	httpadp "kredinou/internal/adapter/http"
	"kredinou/internal/adapter/repository/mysql"
	"kredinou/internal/config"
	"kredinou/internal/domain/admin"
	"kredinou/internal/domain/loan"
	"kredinou/internal/domain/notification"
	"kredinou/internal/domain/repayment"
	"kredinou/internal/domain/user"
	"kredinou/internal/domain/wallet"
	"kredinou/internal/domain/withdrawal"
	"kredinou/internal/infrastructure/cache"
	"kredinou/internal/infrastructure/db"
	adminuc "kredinou/internal/usecase/admin"
	dashboarduc "kredinou/internal/usecase/dashboard"
	loanuc "kredinou/internal/usecase/loan"
	notificationuc "kredinou/internal/usecase/notification"
	repaymentuc "kredinou/internal/usecase/repayment"
	useruc "kredinou/internal/usecase/user"
	walletuc "kredinou/internal/usecase/wallet"
	withdrawaluc "kredinou/internal/usecase/withdrawal"
	"kredinou/pkg/token"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&user.User{}, &user.Document{},
		&admin.Admin{}, &admin.Action{},
		&loan.Loan{},
		&repayment.Repayment{},
		&wallet.Wallet{},
		&withdrawal.Withdrawal{}, &withdrawal.Deduction{},
		&notification.Notification{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Redis is optional; without it the API runs with no idempotency replay
	// and an uncached dashboard.
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Printf("redis unavailable, continuing without it: %v", err)
		rdb = nil
	}

	userRepo := mysql.NewUserRepository(gdb)
	adminRepo := mysql.NewAdminRepository(gdb)
	loanRepo := mysql.NewLoanRepository(gdb)
	repaymentRepo := mysql.NewRepaymentRepository(gdb)
	walletRepo := mysql.NewWalletRepository(gdb)
	_ = walletRepo
	withdrawalRepo := mysql.NewWithdrawalRepository(gdb)
	notificationRepo := mysql.NewNotificationRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	userTokens := token.NewIssuer(cfg.UserJWTSecret, token.AudienceUser,
		time.Duration(cfg.UserTokenTTLHours)*time.Hour)
	adminTokens := token.NewIssuer(cfg.AdminJWTSecret, token.AudienceAdmin,
		time.Duration(cfg.AdminTokenTTLHours)*time.Hour)

	userUC := useruc.NewUsecase(userRepo, loanRepo, uow, userTokens)
	adminUC := adminuc.NewUsecase(adminRepo, uow, adminTokens, cfg.AdminPepper)
	loanUC := loanuc.NewUsecase(loanRepo, userRepo, uow)
	repaymentUC := repaymentuc.NewUsecase(loanRepo, repaymentRepo, uow)
	walletUC := walletuc.NewUsecase(uow)
	withdrawalUC := withdrawaluc.NewUsecase(withdrawalRepo, userRepo, uow)
	notificationUC := notificationuc.NewUsecase(notificationRepo)
	dashboardUC := dashboarduc.NewUsecase(userRepo, loanRepo, repaymentRepo, withdrawalRepo,
		rdb, time.Duration(cfg.DashboardTTLSeconds)*time.Second)

	if err := adminUC.SeedInitial(context.Background(), cfg.AdminSeedEmail, cfg.AdminSeedPassword); err != nil {
		log.Fatalf("admin seed: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	httpadp.RegisterRoutes(e, httpadp.Deps{
		Health:     httpadp.NewHandler(),
		Auth:       httpadp.NewAuthHandler(userUC),
		Users:      httpadp.NewUserHandler(userUC, notificationUC),
		Loans:      httpadp.NewLoanHandler(loanUC),
		Repayments: httpadp.NewRepaymentHandler(repaymentUC),
		Wallets:    httpadp.NewWalletHandler(walletUC),
		Withdrawal: httpadp.NewWithdrawalHandler(withdrawalUC),
		Admin:      httpadp.NewAdminHandler(adminUC),
		Dashboard:  httpadp.NewDashboardHandler(dashboardUC),

		UserTokens:  userTokens,
		AdminTokens: adminTokens,

		Redis:    rdb,
		IdempTTL: time.Duration(cfg.IdempTTLSecs) * time.Second,

		CORSOrigins: cfg.CORSOrigins,
	})

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
