package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const (
	ssmTelegramToken = "/whalerider/prod/telegram-token"
	ssmHeliusAPIKey  = "/whalerider/prod/helius-api-key"
)

type Config struct {
	Dev    bool   `envconfig:"DEV" default:"false"`
	DBPath string `envconfig:"DB_PATH" default:"data/whalerider.db"`

	TelegramToken string `envconfig:"TELEGRAM_TOKEN"`
	HeliusAPIKey  string `envconfig:"HELIUS_API_KEY"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET" required:"true"`
	WebhookAddr   string `envconfig:"WEBHOOK_ADDR" default:":8080"`

	WatchedWallet     string `envconfig:"WATCHED_WALLET" required:"true"`
	TokenMint         string `envconfig:"TOKEN_MINT" required:"true"`
	PlatformAuthority string `envconfig:"PLATFORM_AUTHORITY" default:"TSLvdd1pWpHVjahSpsvCXUbgwsL3JAcvokwaKt1eokM"`
	BurnAddress       string `envconfig:"BURN_ADDRESS" default:"11111111111111111111111111111111"`

	MinVolumeSOL      float64       `envconfig:"MIN_VOLUME_SOL" default:"4"`
	MaxTokenAge       time.Duration `envconfig:"MAX_TOKEN_AGE" default:"60m"`
	DedupWindow       time.Duration `envconfig:"DEDUP_WINDOW" default:"5m"`
	RateLimitInterval time.Duration `envconfig:"RATE_LIMIT_INTERVAL" default:"30s"`
	PollInterval      time.Duration `envconfig:"POLL_INTERVAL" default:"60s"`
	CleanupInterval   time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`
	OracleTimeout     time.Duration `envconfig:"ORACLE_TIMEOUT" default:"10s"`

	MinHolding        float64       `envconfig:"MIN_HOLDING" default:"10000"`
	BurnAmount        float64       `envconfig:"BURN_AMOUNT" default:"100000"`
	PremiumDuration   time.Duration `envconfig:"PREMIUM_DURATION" default:"168h"`
	NotifyConcurrency int           `envconfig:"NOTIFY_CONCURRENCY" default:"8"`
}

func New(ctx context.Context) (*Config, error) {
	res := &Config{}

	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if !res.Dev {
		if err := res.loadSecrets(ctx); err != nil {
			return nil, err
		}
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}
	if res.HeliusAPIKey == "" {
		return nil, errors.New("helius api key is required")
	}

	return res, nil
}

func (c *Config) loadSecrets(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	client := ssm.NewFromConfig(cfg)

	if c.TelegramToken == "" {
		c.TelegramToken, err = getSSMParameter(ctx, client, ssmTelegramToken)
		if err != nil {
			return err
		}
	}
	if c.HeliusAPIKey == "" {
		c.HeliusAPIKey, err = getSSMParameter(ctx, client, ssmHeliusAPIKey)
		if err != nil {
			return err
		}
	}

	return nil
}

func getSSMParameter(ctx context.Context, client *ssm.Client, name string) (string, error) {
	param, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM parameter %s: %w", name, err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", fmt.Errorf("SSM parameter %s not found", name)
	}

	return *param.Parameter.Value, nil
}
