package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    string `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret     string `yaml:"secret"`
	Issuer     string `yaml:"issuer"`
	AccessTTL  string `yaml:"access_ttl"`
	RefreshTTL string `yaml:"refresh_ttl"`
}

type OTPConfig struct {
	TTL       string `yaml:"ttl"`
	Length    int    `yaml:"length"`
	Retention string `yaml:"retention"`
	Channel   string `yaml:"channel"` // "email" or "sms"
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	From     string `yaml:"from"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
}

type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	JWTSecret     string
	JWTIssuer     string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
	OTPTTL        time.Duration
	OTPLength     int
	OTPRetention  time.Duration
	OTPChannel    string
	SMTPHost      string
	SMTPPort      string
	SMTPFrom      string
	SMTPUsername  string
	SMTPPassword  string
	TwilioSID     string
	TwilioToken   string
	TwilioFrom    string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml with environment variable overrides.
// A .env file, if present, is folded into the environment first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	configFile, err := loadConfigFile(env("CONFIG_PATH", "config/config.yml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accTTL, err := time.ParseDuration(env("JWT_ACCESS_TTL", configFile.JWT.AccessTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	refTTL, err := time.ParseDuration(env("JWT_REFRESH_TTL", configFile.JWT.RefreshTTL))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT refresh TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(env("OTP_TTL", configFile.OTP.TTL))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	retention, err := time.ParseDuration(env("OTP_RETENTION", configFile.OTP.Retention))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP retention: %w", err)
	}
	if retention <= otpTTL {
		return nil, fmt.Errorf("OTP retention %s must exceed OTP TTL %s", retention, otpTTL)
	}

	redisDB := configFile.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		redisDB, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
	}

	cfg := &Config{
		Port:          env("PORT", configFile.App.Port),
		GinMode:       env("GIN_MODE", configFile.App.GinMode),
		DSN:           env("DATABASE_DSN", configFile.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", configFile.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", configFile.Redis.Password),
		RedisDB:       redisDB,
		JWTSecret:     env("JWT_SECRET_KEY", configFile.JWT.Secret),
		JWTIssuer:     env("JWT_ISSUER", configFile.JWT.Issuer),
		AccessTTL:     accTTL,
		RefreshTTL:    refTTL,
		OTPTTL:        otpTTL,
		OTPLength:     configFile.OTP.Length,
		OTPRetention:  retention,
		OTPChannel:    env("OTP_CHANNEL", configFile.OTP.Channel),
		SMTPHost:      env("SMTP_HOST", configFile.SMTP.Host),
		SMTPPort:      env("SMTP_PORT", configFile.SMTP.Port),
		SMTPFrom:      env("SMTP_FROM", configFile.SMTP.From),
		SMTPUsername:  env("SMTP_USERNAME", configFile.SMTP.Username),
		SMTPPassword:  env("SMTP_PASSWORD", configFile.SMTP.Password),
		TwilioSID:     env("TWILIO_ACCOUNT_SID", configFile.Twilio.AccountSID),
		TwilioToken:   env("TWILIO_AUTH_TOKEN", configFile.Twilio.AuthToken),
		TwilioFrom:    env("TWILIO_FROM_NUMBER", configFile.Twilio.FromNumber),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if cfg.OTPLength == 0 {
		cfg.OTPLength = 6
	}
	if cfg.OTPChannel == "" {
		cfg.OTPChannel = "email"
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cf ConfigFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cf, nil
}
