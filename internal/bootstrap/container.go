package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"peche-payments-be/internal/config"
	"peche-payments-be/internal/controller"
	"peche-payments-be/internal/pkg/logger"
	"peche-payments-be/internal/pkg/mailer"
	"peche-payments-be/internal/repository/contract"
	"peche-payments-be/internal/repository/memory"
	otpredis "peche-payments-be/internal/repository/redis"
	"peche-payments-be/internal/repository/unitofwork"
	"peche-payments-be/internal/service"
	"peche-payments-be/pkg/admin/dashboard"
	"peche-payments-be/pkg/analytics"
	"peche-payments-be/pkg/gateway"
)

const otpTTL = 5 * time.Minute

type Container struct {
	// Controllers
	AuthController       controller.IAuthController
	AdminController      controller.IAdminController
	PaymentController    controller.IPaymentController
	SubscriberController controller.ISubscriberController

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	adminMailer := mailer.NewEmailService(
		cfg.SMTP.Admin.Host,
		cfg.SMTP.Admin.Port,
		cfg.SMTP.Admin.Email,
		cfg.SMTP.Admin.Password,
		cfg.SMTP.Admin.SenderName,
	)
	customerMailer := mailer.NewEmailService(
		cfg.SMTP.Customer.Host,
		cfg.SMTP.Customer.Port,
		cfg.SMTP.Customer.Email,
		cfg.SMTP.Customer.Password,
		cfg.SMTP.Customer.SenderName,
	)

	// 2. OTP Store: Redis when configured, in-process cache otherwise
	var otpRepo contract.OtpRepository
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
		otpRepo = otpredis.NewOtpRepository(rdb, otpTTL)
		log.Println("[INFO] Using OTP store: REDIS")
	} else {
		otpRepo = memory.NewOtpRepository(otpTTL)
		log.Println("[INFO] Using OTP store: IN-MEMORY")
	}

	// 3. External Facades
	gatewayClient := gateway.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	analyticsProvider := analytics.NewProvider(analytics.Config{
		ClientEmail: cfg.Analytics.ClientEmail,
		PrivateKey:  cfg.Analytics.PrivateKey,
		ProjectID:   cfg.Analytics.ProjectID,
		PropertyID:  cfg.Analytics.PropertyID,
	}, sysLogger)
	if !analyticsProvider.IsConfigured() {
		log.Println("[WARN] Google Analytics not configured, dashboard serves demo data")
	}

	// 4. Admin Domain Components
	dashboardAggregator := dashboard.NewAggregator(sysLogger)

	// 5. Services
	authService := service.NewAuthService(cfg, otpRepo, adminMailer, sysLogger)
	paymentService := service.NewPaymentService(
		uowFactory,
		gatewayClient,
		cfg.Razorpay.KeySecret,
		customerMailer,
		sysLogger,
		cfg.App.ProductName,
		cfg.App.DownloadURL,
	)
	subscriberService := service.NewSubscriberService(uowFactory, sysLogger)
	adminService := service.NewAdminService(uowFactory, dashboardAggregator, sysLogger)
	analyticsService := service.NewAnalyticsService(analyticsProvider)

	// 6. Controllers
	return &Container{
		AuthController:       controller.NewAuthController(authService),
		AdminController:      controller.NewAdminController(adminService, subscriberService, analyticsService),
		PaymentController:    controller.NewPaymentController(paymentService),
		SubscriberController: controller.NewSubscriberController(subscriberService),
		Logger:               sysLogger,
	}
}
