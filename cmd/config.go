package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	HTTPPort    string `mapstructure:"HTTP_PORT"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      string `mapstructure:"DB_PORT"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBName      string `mapstructure:"DB_NAME"`
	DBSslMode   string `mapstructure:"DB_SSLMODE"`
	StoreDriver string `mapstructure:"STORE_DRIVER"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	KafkaBrokers               []string `mapstructure:"KAFKA_BROKERS"`
	KafkaConsumerGroup         string   `mapstructure:"KAFKA_CONSUMER_GROUP"`
	KafkaInventoryClearedTopic string   `mapstructure:"KAFKA_INVENTORY_CLEARED_TOPIC"`
	KafkaDeliveryEventsTopic   string   `mapstructure:"KAFKA_DELIVERY_EVENTS_TOPIC"`

	OutboxRelaySchedule    string        `mapstructure:"OUTBOX_RELAY_SCHEDULE"`
	OutboxBatchSize        int           `mapstructure:"OUTBOX_BATCH_SIZE"`
	StaleDeliverySchedule  string        `mapstructure:"STALE_DELIVERY_SCHEDULE"`
	StaleDeliveryAfter     time.Duration `mapstructure:"STALE_DELIVERY_AFTER"`
	PositionSampleInterval time.Duration `mapstructure:"POSITION_SAMPLE_INTERVAL"`

	S3Region        string `mapstructure:"S3_REGION"`
	S3Bucket        string `mapstructure:"S3_BUCKET"`
	S3Endpoint      string `mapstructure:"S3_ENDPOINT"`
	S3PublicBaseURL string `mapstructure:"S3_PUBLIC_BASE_URL"`
}

var defaults = map[string]any{
	"HTTP_PORT":                     "8082",
	"DB_HOST":                       "localhost",
	"DB_PORT":                       "5432",
	"DB_USER":                       "postgres",
	"DB_PASSWORD":                   "",
	"DB_NAME":                       "dispatch",
	"DB_SSLMODE":                    "disable",
	"STORE_DRIVER":                  StoreDriverPostgres,
	"LOG_LEVEL":                     "info",
	"KAFKA_BROKERS":                 []string{},
	"KAFKA_CONSUMER_GROUP":          "dispatch",
	"KAFKA_INVENTORY_CLEARED_TOPIC": "",
	"KAFKA_DELIVERY_EVENTS_TOPIC":   "",
	"OUTBOX_RELAY_SCHEDULE":         "@every 5s",
	"OUTBOX_BATCH_SIZE":             100,
	"STALE_DELIVERY_SCHEDULE":       "0 */5 * * * *",
	"STALE_DELIVERY_AFTER":          "2h",
	"POSITION_SAMPLE_INTERVAL":      "30s",
	"S3_REGION":                     "",
	"S3_BUCKET":                     "",
	"S3_ENDPOINT":                   "",
	"S3_PUBLIC_BASE_URL":            "",
}

// LoadConfig reads an optional .env file, then an optional config file, and
// lets the environment override both.
func LoadConfig(cfgFile string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.KafkaBrokers = compact(cfg.KafkaBrokers)
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errList []error
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		errList = append(errList, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q",
			StoreDriverPostgres, StoreDriverMemory, c.StoreDriver))
	}
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("HTTP_PORT is required"))
	}
	if c.OutboxBatchSize <= 0 {
		errList = append(errList, errors.New("OUTBOX_BATCH_SIZE must be positive"))
	}
	if c.StaleDeliveryAfter <= 0 {
		errList = append(errList, errors.New("STALE_DELIVERY_AFTER must be positive"))
	}
	if c.PositionSampleInterval < 0 {
		errList = append(errList, errors.New("POSITION_SAMPLE_INTERVAL must not be negative"))
	}
	if c.S3Bucket != "" && c.S3Region == "" && c.S3Endpoint == "" {
		errList = append(errList, errors.New("S3_REGION or S3_ENDPOINT is required with S3_BUCKET"))
	}
	return errors.Join(errList...)
}

// DSN is the lib/pq style connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func compact(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
