package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 5000
	defaultEnv        = "development"
	defaultAIEndpoint = "https://api.x.ai/v1"
	defaultAIModel    = "grok-2-mini"
)

// AppConfig holds runtime startup configuration loaded from YAML, with
// environment variables taking precedence over the file.
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	DatabaseURL    string   `yaml:"database_url"`
	DatabaseTLS    bool     `yaml:"database_tls"`
	RedisURL       string   `yaml:"redis_url"`
	JWTSecret      string   `yaml:"jwt_secret"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	AI             AIConfig `yaml:"ai"`
	S3             S3Config `yaml:"s3"`
}

// AIConfig configures the completion service. An absent or malformed APIKey
// switches the analysis stage to its placeholder fallback.
type AIConfig struct {
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// S3Config configures the blob store used for deck archival and reports.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Endpoint        string `yaml:"endpoint"` // optional, for S3-compatible stores
}

// Load reads the YAML config file (if present) and applies environment
// overrides.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		AI: AIConfig{
			Endpoint: defaultAIEndpoint,
			Model:    defaultAIModel,
		},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.AI.Endpoint == "" {
		cfg.AI.Endpoint = defaultAIEndpoint
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultAIModel
	}
	return cfg, nil
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	setString(&c.Env, "ENV")
	setString(&c.DatabaseURL, "POSTGRES_URI")
	if v := os.Getenv("POSTGRES_SSL"); v != "" {
		c.DatabaseTLS = strings.EqualFold(v, "true")
	}
	setString(&c.RedisURL, "REDIS_URL")
	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.AI.APIKey, "XAI_API_KEY")
	setString(&c.AI.Endpoint, "XAI_API_ENDPOINT")
	setString(&c.AI.Model, "XAI_MODEL")
	setString(&c.S3.Bucket, "S3_BUCKET_NAME")
	setString(&c.S3.Region, "AWS_REGION")
	setString(&c.S3.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setString(&c.S3.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setString(&c.S3.Endpoint, "S3_ENDPOINT")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		c.AllowedOrigins = c.AllowedOrigins[:0]
		for _, o := range origins {
			if o = strings.TrimSpace(o); o != "" {
				c.AllowedOrigins = append(c.AllowedOrigins, o)
			}
		}
	}
}

func setString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.ToLower(strings.TrimSpace(c.Env)) != "production"
}
