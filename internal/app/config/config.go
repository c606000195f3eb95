package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// AppConfig is built once at process start and passed by value to the
// components that need it.
type AppConfig struct {
	ServerAddr        string `envconfig:"SERVER_ADDRESS"`
	LogLevel          string `envconfig:"LOG_LEVEL"`
	DatabaseDSN       string `envconfig:"DATABASE_DSN"`
	ContextTimeoutSec int    `envconfig:"CONTEXT_TIMEOUT_SEC"`

	WebhookSecret       string   `envconfig:"WEBHOOK_SECRET"`
	WebhookAllowedCIDRs []string `envconfig:"WEBHOOK_ALLOWED_CIDRS"`

	ProviderURL               string `envconfig:"PROVIDER_URL"`
	ProviderAPIToken          string `envconfig:"PROVIDER_API_TOKEN"`
	ProviderRequestsPerSecond int    `envconfig:"PROVIDER_RPS"`
	ProviderTimeoutSec        int    `envconfig:"PROVIDER_TIMEOUT_SEC"`
	ProviderMaxRetries        int    `envconfig:"PROVIDER_MAX_RETRIES"`

	ReferralDefaultPercentRaw string          `envconfig:"REFERRAL_DEFAULT_PERCENT"`
	ReferralDefaultPercent    decimal.Decimal `ignored:"true"`

	PaymentExpiry   time.Duration `envconfig:"PAYMENT_EXPIRY"`
	SweepSchedule   string        `envconfig:"SWEEP_SCHEDULE"`
	SweepBatchSize  int           `envconfig:"SWEEP_BATCH_SIZE"`
	NotifyTimeout   time.Duration `envconfig:"NOTIFY_TIMEOUT"`
	WithdrawalRetry time.Duration `envconfig:"WITHDRAWAL_RETRY_INTERVAL"`

	TelegramBotToken  string  `envconfig:"TELEGRAM_BOT_TOKEN"`
	AdminChatIDs      []int64 `envconfig:"ADMIN_CHAT_IDS"`
	AdminPasswordHash string  `envconfig:"ADMIN_PASSWORD_HASH"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	TokenSecretKey   string `envconfig:"TOKEN_SECRET_KEY"`
	TokenLifetimeSec int    `envconfig:"TOKEN_LIFETIME_SEC"`
}

func Default() AppConfig {
	const (
		defaultServerAddress     = "localhost:8080"
		defaultLogLevel          = "info"
		defaultContextTimeoutSec = 5
		defaultProviderURL       = "https://pay.crypt.bot/api"
		defaultProviderRPS       = 10
		defaultProviderTimeout   = 10
		defaultProviderRetries   = 3
		defaultReferralPercent   = "1"
		defaultPaymentExpiry     = time.Hour
		defaultSweepSchedule     = "@every 1m"
		defaultSweepBatchSize    = 100
		defaultNotifyTimeout     = 5 * time.Second
		defaultWithdrawalRetry   = 30 * time.Second
		defaultTokenLifetimeSec  = 60 * 60 * 24 // 1 day
	)
	return AppConfig{
		ServerAddr:                defaultServerAddress,
		LogLevel:                  defaultLogLevel,
		ContextTimeoutSec:         defaultContextTimeoutSec,
		ProviderURL:               defaultProviderURL,
		ProviderRequestsPerSecond: defaultProviderRPS,
		ProviderTimeoutSec:        defaultProviderTimeout,
		ProviderMaxRetries:        defaultProviderRetries,
		ReferralDefaultPercentRaw: defaultReferralPercent,
		PaymentExpiry:             defaultPaymentExpiry,
		SweepSchedule:             defaultSweepSchedule,
		SweepBatchSize:            defaultSweepBatchSize,
		NotifyTimeout:             defaultNotifyTimeout,
		WithdrawalRetry:           defaultWithdrawalRetry,
		TokenLifetimeSec:          defaultTokenLifetimeSec,
	}
}

// Load applies defaults, then the given overrides (command-line flags), then
// environment variables (an optional .env file is loaded first).
func Load(overrides ...func(*AppConfig)) (AppConfig, error) {
	_ = godotenv.Load()

	cfg := Default()
	for _, o := range overrides {
		o(&cfg)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.finalize(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *AppConfig) finalize() error {
	pct, err := decimal.NewFromString(c.ReferralDefaultPercentRaw)
	if err != nil {
		return fmt.Errorf("parse REFERRAL_DEFAULT_PERCENT: %w", err)
	}
	c.ReferralDefaultPercent = pct
	return c.Validate()
}

func (c AppConfig) Validate() error {
	if c.WebhookSecret == "" {
		return errors.New("WEBHOOK_SECRET is required")
	}
	if c.ReferralDefaultPercent.IsNegative() {
		return errors.New("REFERRAL_DEFAULT_PERCENT must not be negative")
	}
	if c.PaymentExpiry <= 0 {
		return errors.New("PAYMENT_EXPIRY must be positive")
	}
	if c.ProviderRequestsPerSecond <= 0 {
		return errors.New("PROVIDER_RPS must be positive")
	}
	if c.ProviderMaxRetries < 1 {
		return errors.New("PROVIDER_MAX_RETRIES must be at least 1")
	}
	return nil
}

func (c AppConfig) ContextTimeout() time.Duration {
	return time.Duration(c.ContextTimeoutSec) * time.Second
}
