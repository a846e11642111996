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
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	Admin  AdminConfig
	Redis  RedisConfig
	AMQP   AMQPConfig
	Event  EventConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Zurich"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Zurich"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"7200"` // 2*60*60
}

// AdminConfig backs the shared-secret gate in front of administrative
// operations: a PIN exchanged for a signed session cookie.
type AdminConfig struct {
	PIN             string        `envconfig:"ADMIN_PIN" required:"true"`
	Secret          string        `envconfig:"ADMIN_SECRET" required:"true"`
	SessionDuration time.Duration `envconfig:"ADMIN_SESSION_DURATION" default:"168h"`
	CookieDomain    string        `envconfig:"ADMIN_COOKIE_DOMAIN" default:""`
	CookieSecure    bool          `envconfig:"ADMIN_COOKIE_SECURE" default:"true"`
}

// RedisConfig controls the remaining-stock cache. An empty Addr disables
// caching entirely; the cache is never authoritative for stock decisions.
type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:""`
	StockTTL time.Duration `envconfig:"REDIS_STOCK_TTL" default:"30s"`
}

// AMQPConfig controls the notification queue. An empty URL downgrades the
// sender to log-only.
type AMQPConfig struct {
	URL string `envconfig:"AMQP_URL" default:""`
}

type EventConfig struct {
	UnitPriceCHF  int    `envconfig:"EVENT_UNIT_PRICE_CHF" default:"200"`
	StayLabel     string `envconfig:"EVENT_STAY_LABEL" default:"Nuit du samedi au dimanche"`
	TwintPhone    string `envconfig:"EVENT_TWINT_PHONE" default:""`
	OperatorEmail string `envconfig:"EVENT_OPERATOR_EMAIL" required:"true"`
	PublicBaseURL string `envconfig:"EVENT_PUBLIC_BASE_URL" default:"http://localhost:8080"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/Zurich",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Zurich",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 7200,
		},
		Admin: AdminConfig{
			PIN:             "0000",
			Secret:          "test-secret",
			SessionDuration: time.Hour,
		},
		Event: EventConfig{
			UnitPriceCHF:  200,
			StayLabel:     "Nuit du samedi au dimanche",
			OperatorEmail: "operator@example.com",
			PublicBaseURL: "http://localhost:8889",
		},
	}
}
