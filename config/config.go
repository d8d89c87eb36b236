package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize  = "100KB"
	defaultMaxImageBytes       = 5 << 20
	defaultExpiringWindow      = 7 * 24 * time.Hour
	defaultAccessTokenTTL      = 15 * time.Minute
	defaultRefreshTokenTTL     = 7 * 24 * time.Hour
	defaultSlowQueryThreshold  = 200 * time.Millisecond
	defaultPoolMonitorInterval = 5 * time.Second
)

// Config is shared by the shop API and the worker. Each process reads only
// the sections it wires.
type Config struct {
	Env  EnvConfig  `json:"env" yaml:"env"`
	HTTP HTTPConfig `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
	Database *DatabaseConfig  `json:"database" yaml:"database"`

	SecretKey        SecretKeyConfig         `json:"secretKey" yaml:"secretKey"`
	Auth             *AuthConfig             `json:"auth" yaml:"auth"`
	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength"`

	// Push delivery of order and pre-order notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Pickup codes printed on orders
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Domain events leave the API here and come back through the worker
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`
	Coupon  *CouponConfig  `json:"coupon" yaml:"coupon"`
	Worker  *WorkerConfig  `json:"worker" yaml:"worker"`
}

// EnvConfig names the deployment and controls log output.
type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// HTTPConfig is the shop API listener.
type HTTPConfig struct {
	Port int `json:"port" yaml:"port"`

	// Human readable size such as "100KB"; image uploads use Storage.MaxImageBytes instead
	MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`

	Timeouts HTTPTimeouts `json:"timeouts" yaml:"timeouts"`
}

type HTTPTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// DatabaseConfig controls how database activity is observed.
type DatabaseConfig struct {
	// Queries slower than this are logged as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// SecretKeyConfig holds the HMAC secrets used to sign tokens.
type SecretKeyConfig struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`

	// Logging in at this many live sessions evicts the oldest; zero means unlimited
	MaxActiveSessions int `json:"maxActiveSessions" yaml:"maxActiveSessions"`

	AccessTokenTTL  time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
	RefreshTokenTTL time.Duration `json:"refreshTokenTTL" yaml:"refreshTokenTTL"`
}

// PasswordStrengthConfig is the policy checked at registration and password change.
type PasswordStrengthConfig struct {
	MinLength        int      `json:"minLength" yaml:"minLength"`
	MaxLength        int      `json:"maxLength" yaml:"maxLength"`
	RequireUppercase bool     `json:"requireUppercase" yaml:"requireUppercase"`
	RequireLowercase bool     `json:"requireLowercase" yaml:"requireLowercase"`
	RequireNumbers   bool     `json:"requireNumbers" yaml:"requireNumbers"`
	RequireSpecial   bool     `json:"requireSpecial" yaml:"requireSpecial"`
	ForbiddenWords   []string `json:"forbiddenWords" yaml:"forbiddenWords"`
}

// FirebaseConfig points at the service account used for FCM. An empty
// CredentialsPath disables push delivery.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type QRCodeConfig struct {
	Size int `json:"size" yaml:"size"`

	// low, medium, high or highest
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`

	// Pickup links are BaseURL/<order id>
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig selects where order and pre-order events are published.
type PubSubConfig struct {
	// "local" posts push envelopes straight to the worker; "google" uses Cloud Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	ProjectID     string `json:"projectId" yaml:"projectId"`
	TopicID       string `json:"topicId" yaml:"topicId"`
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected in push tokens; empty disables the audience check
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// StorageConfig defines where product and blog images are kept.
type StorageConfig struct {
	// Bucket URL understood by gocloud.dev: file:///var/data/images, gs://bucket, mem://
	BucketURL string `json:"bucketURL" yaml:"bucketURL"`

	// Prefix prepended to object keys to build public image URLs
	PublicBaseURL string `json:"publicBaseURL" yaml:"publicBaseURL"`

	MaxImageBytes int64 `json:"maxImageBytes" yaml:"maxImageBytes"`
}

type CouponConfig struct {
	// Active coupons ending within this window are reported as expiring
	ExpiringWindow time.Duration `json:"expiringWindow" yaml:"expiringWindow"`
}

// WorkerConfig defines the worker process.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// Bearer token required by the /jobs endpoints; empty disables them
	JobToken string `json:"jobToken" yaml:"jobToken"`
}

// New loads config.yaml from the working directory or a nearby config
// directory, overlays environment variables and fills defaults.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	cfg.Postgres.Replicas = replicasFromEnv(os.LookupEnv)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres == nil {
		cfg.Postgres = new(postgres.DBConn)
	}
	if cfg.Database == nil {
		cfg.Database = new(DatabaseConfig)
	}
	cfg.Database.SlowQueryThreshold = orDefault(cfg.Database.SlowQueryThreshold, defaultSlowQueryThreshold)
	cfg.Database.PoolMonitorInterval = orDefault(cfg.Database.PoolMonitorInterval, defaultPoolMonitorInterval)

	if cfg.Auth == nil {
		cfg.Auth = new(AuthConfig)
	}
	cfg.Auth.AccessTokenTTL = orDefault(cfg.Auth.AccessTokenTTL, defaultAccessTokenTTL)
	cfg.Auth.RefreshTokenTTL = orDefault(cfg.Auth.RefreshTokenTTL, defaultRefreshTokenTTL)

	if cfg.PubSub == nil {
		cfg.PubSub = new(PubSubConfig)
	}

	if cfg.Storage == nil {
		cfg.Storage = new(StorageConfig)
	}
	cfg.Storage.MaxImageBytes = orDefault(cfg.Storage.MaxImageBytes, defaultMaxImageBytes)

	if cfg.Coupon == nil {
		cfg.Coupon = new(CouponConfig)
	}
	cfg.Coupon.ExpiringWindow = orDefault(cfg.Coupon.ExpiringWindow, defaultExpiringWindow)

	if cfg.Worker == nil {
		cfg.Worker = new(WorkerConfig)
	}
}

func orDefault[T time.Duration | int64](value, fallback T) T {
	if value <= 0 {
		return fallback
	}

	return value
}
