package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
	Booking BookingConfig `yaml:"booking"`
	Redis   RedisConfig   `yaml:"redis"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type HTTPConfig struct {
	Address string `yaml:"address" validate:"required"`
	Swagger bool   `yaml:"swagger"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type CatalogConfig struct {
	// SeedFile replaces the built-in schedule when set.
	SeedFile string `yaml:"seed_file"`
}

type BookingConfig struct {
	SeedDemo *bool `yaml:"seed_demo"`
}

// SeedDemoEnabled defaults to true when seed_demo is absent.
func (b BookingConfig) SeedDemoEnabled() bool {
	return b.SeedDemo == nil || *b.SeedDemo
}

type RedisConfig struct {
	Addr             string `yaml:"addr"`
	Password         string `yaml:"password"`
	DB               int    `yaml:"db" validate:"gte=0"`
	SearchTTLSeconds int    `yaml:"search_ttl_seconds" validate:"gte=0"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers" validate:"omitempty,dive,hostname_port"`
	BookingTopic       string   `yaml:"booking_topic" validate:"required_with=Brokers"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
	PublishTimeoutMS   int      `yaml:"publish_timeout_ms" validate:"gte=0"`
}

func (k KafkaConfig) PublishTimeout() time.Duration {
	return time.Duration(k.PublishTimeoutMS) * time.Millisecond
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Address: ":8080"},
		Log:  LogConfig{Level: "info", Format: "console"},
		Redis: RedisConfig{
			SearchTTLSeconds: 60,
		},
		Kafka: KafkaConfig{
			BookingTopic:       "bookings",
			NotificationsTopic: "booking-notifications",
			GroupID:            "railbooking-notifier",
			PublishTimeoutMS:   2000,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
