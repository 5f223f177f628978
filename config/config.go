package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AES       AESConfig       `mapstructure:"aes"`
	Log       LogConfig       `mapstructure:"log"`
	App       AppConfig       `mapstructure:"app"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Providers ProvidersConfig `mapstructure:"providers"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig validates admin tokens issued by the storefront's auth service.
type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Issuer string        `mapstructure:"issuer"`
	Expiry time.Duration `mapstructure:"expiry"` // lifetime of tokens minted by providerctl
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// AppConfig holds values that describe how this service is reached from outside.
type AppConfig struct {
	PublicURL string `mapstructure:"public_url"` // base for demo checkout redirects
}

// StorageConfig configures the S3-compatible bucket for labels and manifests.
// An empty bucket selects the in-process stub store.
type StorageConfig struct {
	Endpoint      string        `mapstructure:"endpoint"`
	Region        string        `mapstructure:"region"`
	Bucket        string        `mapstructure:"bucket"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	UsePathStyle  bool          `mapstructure:"use_path_style"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

// Enabled reports whether a real bucket is configured.
func (s StorageConfig) Enabled() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

type ProvidersConfig struct {
	Timeout         time.Duration         `mapstructure:"timeout"`
	DHL             DHLConfig             `mapstructure:"dhl"`
	TTOM            TTOMConfig            `mapstructure:"ttom"`
	RevolutMerchant RevolutMerchantConfig `mapstructure:"revolut_merchant"`
	RevolutBusiness RevolutBusinessConfig `mapstructure:"revolut_business"`
}

// DHLConfig holds MyDHL Express API credentials.
type DHLConfig struct {
	ClientID      string `mapstructure:"client_id"`
	ClientSecret  string `mapstructure:"client_secret"`
	AccountNumber string `mapstructure:"account_number"`
	Region        string `mapstructure:"region"`
	BaseURL       string `mapstructure:"base_url"` // override; empty = derive from credentials
}

// IsConfigured reports whether every required DHL credential is present.
func (c DHLConfig) IsConfigured() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.AccountNumber != "" && c.Region != ""
}

// TTOMConfig holds the sea-freight forwarder contact and automation credentials.
type TTOMConfig struct {
	ContactEmail string `mapstructure:"contact_email"`
	APIKey       string `mapstructure:"api_key"`
	BaseURL      string `mapstructure:"base_url"`
}

// IsConfigured needs only the contact email. The API key switches bookings
// from emailed requests to automated bookings.
func (c TTOMConfig) IsConfigured() bool {
	return c.ContactEmail != ""
}

// Automated reports whether the automation API key is present.
func (c TTOMConfig) Automated() bool {
	return c.ContactEmail != "" && c.APIKey != ""
}

// RevolutMerchantConfig holds the merchant API key and webhook signing secret.
type RevolutMerchantConfig struct {
	APIKey        string `mapstructure:"api_key"`
	WebhookSecret string `mapstructure:"webhook_secret"`
	BaseURL       string `mapstructure:"base_url"`
}

func (c RevolutMerchantConfig) IsConfigured() bool {
	return c.APIKey != ""
}

// RevolutBusinessConfig holds the business API client credentials.
// CertPath points at the PEM private key used to sign client assertions.
type RevolutBusinessConfig struct {
	APIKeyID string `mapstructure:"api_key_id"`
	OrgID    string `mapstructure:"org_id"`
	CertPath string `mapstructure:"cert_path"`
	BaseURL  string `mapstructure:"base_url"`
}

func (c RevolutBusinessConfig) IsConfigured() bool {
	return c.APIKeyID != "" && c.OrgID != "" && c.CertPath != ""
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MKT_.
// Nested keys use underscore: MKT_DATABASE_HOST, MKT_PROVIDERS_DHL_CLIENT_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MKT_PROVIDERS_TTOM_API_KEY -> providers.ttom.api_key
	v.SetEnvPrefix("MKT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "marketplace")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "marketplace-storefront")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("aes.key", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("app.public_url", "http://localhost:8080")
	v.SetDefault("storage.region", "eu-central-1")
	v.SetDefault("storage.use_path_style", false)
	v.SetDefault("storage.presign_expiry", "168h")
	v.SetDefault("providers.timeout", "12s")

	// Credential keys must be registered for AutomaticEnv to see them on Unmarshal.
	for _, key := range []string{
		"storage.endpoint", "storage.bucket", "storage.access_key", "storage.secret_key",
		"providers.dhl.client_id", "providers.dhl.client_secret", "providers.dhl.account_number",
		"providers.dhl.region", "providers.dhl.base_url",
		"providers.ttom.contact_email", "providers.ttom.api_key", "providers.ttom.base_url",
		"providers.revolut_merchant.api_key", "providers.revolut_merchant.webhook_secret",
		"providers.revolut_merchant.base_url",
		"providers.revolut_business.api_key_id", "providers.revolut_business.org_id",
		"providers.revolut_business.cert_path", "providers.revolut_business.base_url",
	} {
		v.SetDefault(key, "")
	}
}
