package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/authsvc/domain"
	"github.com/you/authsvc/internal/config"
	"github.com/you/authsvc/internal/infrastructure/auth"
	"github.com/you/authsvc/internal/infrastructure/notifications"
	"github.com/you/authsvc/internal/infrastructure/repositories"
	"github.com/you/authsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	UserRepo domain.UserRepository
	OTPRepo  domain.OTPRepository

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
}

// NewContainer wires repositories and services bottom-up.
func NewContainer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Container {
	c := &Container{Config: cfg}

	c.UserRepo = repositories.NewUserRepository(db)
	c.OTPRepo = repositories.NewOTPRepository(redisClient, cfg.OTPRetention)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	switch cfg.OTPChannel {
	case "sms":
		c.NotificationSvc = notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)
	default:
		c.NotificationSvc = notifications.NewSMTPService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)
	}

	c.OTPSvc = services.NewOTPService(c.OTPRepo, c.NotificationSvc, services.OTPConfig{
		Length:  cfg.OTPLength,
		TTL:     cfg.OTPTTL,
		Channel: cfg.OTPChannel,
	})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.PasswordSvc,
		c.TokenSvc,
		c.OTPSvc,
		int64(cfg.AccessTTL.Seconds()),
	)

	return c
}
