package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string
	LogLevel string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaBrokers            []string
	KafkaConsumerGroup      string
	KafkaNotificationsTopic string

	WorkerPoolSize    int
	WorkerPoolBacklog int

	RebroadcastSchedule string
	RebroadcastAge      time.Duration
	RebroadcastBatch    int

	RealtimeSendTimeout time.Duration
	DispatchSendTimeout time.Duration

	ChannelHTTPTimeout time.Duration
	PushEndpoint       string
	PushAPIKey         string
	SMSEndpoint        string
	SMSAPIKey          string
	SMSSender          string
	EmailEndpoint      string
	EmailAPIKey        string
	EmailFrom          string
}

// LoadConfig reads settings from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func LoadConfig() (Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "freshdispatch")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KAFKA_CONSUMER_GROUP", "freshdispatch-notifications")
	v.SetDefault("KAFKA_NOTIFICATIONS_TOPIC", "notification-jobs")
	v.SetDefault("WORKER_POOL_SIZE", 3)
	v.SetDefault("WORKER_POOL_BACKLOG", 64)
	v.SetDefault("REBROADCAST_SCHEDULE", "0 * * * * *")
	v.SetDefault("REBROADCAST_AGE", "5m")
	v.SetDefault("REBROADCAST_BATCH", 100)
	v.SetDefault("REALTIME_SEND_TIMEOUT", "5s")
	v.SetDefault("DISPATCH_SEND_TIMEOUT", "5s")
	v.SetDefault("CHANNEL_HTTP_TIMEOUT", "10s")
	v.SetDefault("PUSH_ENDPOINT", "")
	v.SetDefault("PUSH_API_KEY", "")
	v.SetDefault("SMS_ENDPOINT", "")
	v.SetDefault("SMS_API_KEY", "")
	v.SetDefault("SMS_SENDER", "FreshDispatch")
	v.SetDefault("EMAIL_ENDPOINT", "")
	v.SetDefault("EMAIL_API_KEY", "")
	v.SetDefault("EMAIL_FROM", "orders@freshdispatch.local")

	cfg := Config{
		HTTPPort: v.GetString("HTTP_PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetString("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSslMode:  v.GetString("DB_SSLMODE"),

		KafkaBrokers:            splitList(v.GetString("KAFKA_BROKERS")),
		KafkaConsumerGroup:      v.GetString("KAFKA_CONSUMER_GROUP"),
		KafkaNotificationsTopic: v.GetString("KAFKA_NOTIFICATIONS_TOPIC"),

		WorkerPoolSize:    v.GetInt("WORKER_POOL_SIZE"),
		WorkerPoolBacklog: v.GetInt("WORKER_POOL_BACKLOG"),

		RebroadcastSchedule: v.GetString("REBROADCAST_SCHEDULE"),
		RebroadcastBatch:    v.GetInt("REBROADCAST_BATCH"),

		PushEndpoint:  v.GetString("PUSH_ENDPOINT"),
		PushAPIKey:    v.GetString("PUSH_API_KEY"),
		SMSEndpoint:   v.GetString("SMS_ENDPOINT"),
		SMSAPIKey:     v.GetString("SMS_API_KEY"),
		SMSSender:     v.GetString("SMS_SENDER"),
		EmailEndpoint: v.GetString("EMAIL_ENDPOINT"),
		EmailAPIKey:   v.GetString("EMAIL_API_KEY"),
		EmailFrom:     v.GetString("EMAIL_FROM"),
	}

	durations := map[string]*time.Duration{
		"REBROADCAST_AGE":       &cfg.RebroadcastAge,
		"REALTIME_SEND_TIMEOUT": &cfg.RealtimeSendTimeout,
		"DISPATCH_SEND_TIMEOUT": &cfg.DispatchSendTimeout,
		"CHANNEL_HTTP_TIMEOUT":  &cfg.ChannelHTTPTimeout,
	}
	for key, dst := range durations {
		d, err := time.ParseDuration(v.GetString(key))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", key, err)
		}
		*dst = d
	}

	if len(cfg.KafkaBrokers) == 0 {
		return Config{}, errors.New("KAFKA_BROKERS must list at least one broker")
	}

	return cfg, nil
}

// PostgresDSN is the connection string for gorm's postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
