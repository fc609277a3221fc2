package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	DB       DBConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Notify   NotifyConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Workflow WorkflowConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type StoreConfig struct {
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
	// SeedFile is a JSON file of wallets and provider profiles loaded by the memory driver.
	SeedFile string `envconfig:"MEMORY_SEED_FILE"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

const (
	StorageDriverS3     = "s3"
	StorageDriverMemory = "memory"
)

type StorageConfig struct {
	Driver   string `envconfig:"STORAGE_DRIVER" default:"s3"`
	Bucket   string `envconfig:"STORAGE_BUCKET" default:"proposal-documents"`
	Region   string `envconfig:"STORAGE_REGION" default:"us-east-1"`
	Endpoint string `envconfig:"STORAGE_ENDPOINT"`
	Prefix   string `envconfig:"STORAGE_PREFIX" default:"proposals/"`
	// PublicBaseURL is prepended to object keys to build the stored document reference.
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL"`
	MaxUploadSize int64  `envconfig:"STORAGE_MAX_UPLOAD_BYTES" default:"10485760"`
}

const (
	NotifyDriverRedis = "redis"
	NotifyDriverLog   = "log"
)

type NotifyConfig struct {
	Driver   string `envconfig:"NOTIFY_DRIVER" default:"redis"`
	Stream   string `envconfig:"NOTIFY_STREAM" default:"event_workflow:notifications"`
	Group    string `envconfig:"NOTIFY_GROUP" default:"notification-relay"`
	Consumer string `envconfig:"NOTIFY_CONSUMER" default:"relay-1"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
	Issuer string `envconfig:"JWT_ISSUER"`
	// TokenTTL only applies to tokens minted by the service itself (dev tooling and tests).
	TokenTTL time.Duration `envconfig:"JWT_TOKEN_TTL" default:"1h"`
}

const (
	OrphanPolicyReject = "reject"
	OrphanPolicyKeep   = "keep"
)

type WorkflowConfig struct {
	// RequestCharge is debited from the requester's balance on every new event request.
	RequestCharge int64         `envconfig:"WORKFLOW_REQUEST_CHARGE" default:"50"`
	LedgerTimeout time.Duration `envconfig:"WORKFLOW_LEDGER_TIMEOUT" default:"5s"`
	NotifyTimeout time.Duration `envconfig:"WORKFLOW_NOTIFY_TIMEOUT" default:"3s"`
	// OrphanProposals decides what a forced rejection does to pending proposals.
	OrphanProposals string        `envconfig:"WORKFLOW_ORPHAN_PROPOSALS" default:"reject"`
	IdempotencyTTL  time.Duration `envconfig:"WORKFLOW_IDEMPOTENCY_TTL" default:"24h"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgres:
		if c.DB.User == "" || c.DB.DBName == "" {
			return fmt.Errorf("DB_USER and DB_NAME are required when STORE_DRIVER=%s", StoreDriverPostgres)
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}

	switch c.Storage.Driver {
	case StorageDriverS3, StorageDriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	switch c.Notify.Driver {
	case NotifyDriverRedis, NotifyDriverLog:
	default:
		return fmt.Errorf("unknown NOTIFY_DRIVER %q", c.Notify.Driver)
	}

	switch c.Workflow.OrphanProposals {
	case OrphanPolicyReject, OrphanPolicyKeep:
	default:
		return fmt.Errorf("unknown WORKFLOW_ORPHAN_PROPOSALS %q", c.Workflow.OrphanProposals)
	}

	if c.Workflow.RequestCharge <= 0 {
		return fmt.Errorf("WORKFLOW_REQUEST_CHARGE must be positive, got %d", c.Workflow.RequestCharge)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{Driver: StoreDriverMemory},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Storage: StorageConfig{
			Driver:        StorageDriverMemory,
			Bucket:        "test-bucket",
			Prefix:        "proposals/",
			MaxUploadSize: 1 << 20,
		},
		Notify: NotifyConfig{Driver: NotifyDriverLog},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{Secret: "test-secret", TokenTTL: time.Hour},
		Workflow: WorkflowConfig{
			RequestCharge:   50,
			LedgerTimeout:   time.Second,
			NotifyTimeout:   time.Second,
			OrphanProposals: OrphanPolicyReject,
			IdempotencyTTL:  time.Hour,
		},
	}
}
