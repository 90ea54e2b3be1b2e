package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Meta              Meta              `mapstructure:",squash"`
	QStash            QStash            `mapstructure:",squash"`
	Webhook           Webhook           `mapstructure:",squash"`
	MetaMarketingSync MetaMarketingSync `mapstructure:",squash"`
	RateLimit         RateLimit         `mapstructure:",squash"`
	CronSecret        string            `mapstructure:"cron_secret"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL     string `mapstructure:"meta_base_url"`
	URL         string `mapstructure:"-"`
	Version     string `mapstructure:"meta_version"`
	AccessToken string `mapstructure:"meta_access_token"`
	AppID       string `mapstructure:"meta_app_id"`
	AppSecret   string `mapstructure:"meta_app_secret"`
	BusinessID  string `mapstructure:"meta_business_id"`
}

type QStash struct {
	URL               string `mapstructure:"qstash_url"`
	Token             string `mapstructure:"qstash_token"`
	CurrentSigningKey string `mapstructure:"qstash_current_signing_key"`
	NextSigningKey    string `mapstructure:"qstash_next_signing_key"`
	Retries           int    `mapstructure:"qstash_retries"`
}

type Webhook struct {
	BaseURL     string `mapstructure:"webhook_base_url"`
	VerifyToken string `mapstructure:"webhook_verify_token"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type MetaMarketingSync struct {
	CronSchedule         string `mapstructure:"meta_marketing_sync_cron"`
	MaintenanceCron      string `mapstructure:"meta_marketing_maintenance_cron"`
	LookbackDays         int    `mapstructure:"meta_marketing_sync_lookback_days"`
	PageSize             int    `mapstructure:"meta_marketing_sync_page_size"`
	MaxPagesPerLevel     int    `mapstructure:"meta_marketing_sync_max_pages_per_level"`
	MetricRetentionDays  int    `mapstructure:"meta_marketing_metric_retention_days"`
	StaleJobThresholdMin int    `mapstructure:"meta_marketing_stale_job_threshold_minutes"`
	Enabled              bool   `mapstructure:"meta_marketing_sync_enabled"`
}

type RateLimit struct {
	CallsPerSecond    float64 `mapstructure:"meta_rate_limit_calls_per_second"`
	Burst             int     `mapstructure:"meta_rate_limit_burst"`
	UsageThresholdPct float64 `mapstructure:"meta_rate_limit_usage_threshold_pct"`
	BackoffBaseMs     int     `mapstructure:"meta_rate_limit_backoff_base_ms"`
	BackoffMaxMs      int     `mapstructure:"meta_rate_limit_backoff_max_ms"`
	MaxRetries        int     `mapstructure:"meta_rate_limit_max_retries"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/mindfulai")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL
	viper.SetDefault("META_BUSINESS_ID", "")

	viper.SetDefault("CRON_SECRET", "your_cron_secret")

	viper.SetDefault("QSTASH_URL", "https://qstash.upstash.io")
	viper.SetDefault("QSTASH_TOKEN", "")
	viper.SetDefault("QSTASH_CURRENT_SIGNING_KEY", "")
	viper.SetDefault("QSTASH_NEXT_SIGNING_KEY", "")
	viper.SetDefault("QSTASH_RETRIES", 3)

	viper.SetDefault("WEBHOOK_BASE_URL", "http://localhost:8000")
	viper.SetDefault("WEBHOOK_VERIFY_TOKEN", "your_verify_token")

	// Sync tuning
	viper.SetDefault("META_MARKETING_SYNC_CRON", "0 3 * * *")           // Every day at 3am
	viper.SetDefault("META_MARKETING_MAINTENANCE_CRON", "30 4 * * *")   // Every day at 4:30am
	viper.SetDefault("META_MARKETING_SYNC_LOOKBACK_DAYS", 7)            // Insight window
	viper.SetDefault("META_MARKETING_SYNC_PAGE_SIZE", 100)              // Graph API page size
	viper.SetDefault("META_MARKETING_SYNC_MAX_PAGES_PER_LEVEL", 50)     // Hard stop per entity level
	viper.SetDefault("META_MARKETING_METRIC_RETENTION_DAYS", 30)        // meta_api_metrics retention
	viper.SetDefault("META_MARKETING_STALE_JOB_THRESHOLD_MINUTES", 120) // processing jobs older than this fail
	viper.SetDefault("META_MARKETING_SYNC_ENABLED", false)

	// Rate limiting toward the Graph API
	viper.SetDefault("META_RATE_LIMIT_CALLS_PER_SECOND", 2.0)
	viper.SetDefault("META_RATE_LIMIT_BURST", 4)
	viper.SetDefault("META_RATE_LIMIT_USAGE_THRESHOLD_PCT", 75.0)
	viper.SetDefault("META_RATE_LIMIT_BACKOFF_BASE_MS", 1000)
	viper.SetDefault("META_RATE_LIMIT_BACKOFF_MAX_MS", 60000)
	viper.SetDefault("META_RATE_LIMIT_MAX_RETRIES", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file with godotenv first
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// loadEnvFile loads the .env file with godotenv, trying a few locations
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from: ", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
