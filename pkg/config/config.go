package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/VeritasAI/TrustScope/pkg/domain/trust"
	"github.com/VeritasAI/TrustScope/pkg/pipeline"
)

type Config struct {
	Server    ServerConfig                      `mapstructure:"server"`
	Metrics   MetricsConfig                     `mapstructure:"metrics"`
	Database  DatabaseConfig                    `mapstructure:"database"`
	Redis     RedisConfig                       `mapstructure:"redis"`
	Generator GeneratorConfig                   `mapstructure:"generator"`
	Pipeline  PipelineConfig                    `mapstructure:"pipeline"`
	Detectors map[string]map[string]interface{} `mapstructure:"detectors"`
}

type ServerConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	MetricsPort int    `mapstructure:"metrics_port"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConfig struct {
	Host       string `mapstructure:"host"`
	Port       int    `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLMinutes int    `mapstructure:"ttl_minutes"`
}

type GeneratorConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxFailures    uint32 `mapstructure:"max_failures"`
}

type PipelineConfig struct {
	Weights          map[string]float64 `mapstructure:"weights"`
	WarnThreshold    float64            `mapstructure:"warn_threshold"`
	ProceedThreshold float64            `mapstructure:"proceed_threshold"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("TRUSTSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No file is fine, defaults and environment take over.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Fail at startup rather than on the first request.
	if err := cfg.PipelineOptions().Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)

	v.SetDefault("metrics.enabled", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "trustscope")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl_minutes", 60)

	v.SetDefault("generator.base_url", "http://localhost:11434")
	v.SetDefault("generator.model", "llama3")
	v.SetDefault("generator.timeout_seconds", 60)
	v.SetDefault("generator.max_failures", 3)

	defaults := pipeline.DefaultOptions()
	for category, weight := range defaults.Weights {
		v.SetDefault("pipeline.weights."+string(category), weight)
	}
	v.SetDefault("pipeline.warn_threshold", defaults.WarnThreshold)
	v.SetDefault("pipeline.proceed_threshold", defaults.ProceedThreshold)
}

// PipelineOptions maps the file representation onto scoring options.
func (c *Config) PipelineOptions() pipeline.Options {
	options := pipeline.Options{
		Weights:          make(map[trust.Category]float64, len(c.Pipeline.Weights)),
		WarnThreshold:    c.Pipeline.WarnThreshold,
		ProceedThreshold: c.Pipeline.ProceedThreshold,
	}
	for name, weight := range c.Pipeline.Weights {
		options.Weights[trust.Category(name)] = weight
	}
	return options
}

func (c *RedisConfig) TTL() time.Duration {
	return time.Duration(c.TTLMinutes) * time.Minute
}

func (c *GeneratorConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
