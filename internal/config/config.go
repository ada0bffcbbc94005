package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is the full application configuration
type Config struct {
	HTTP  HTTPConfig
	Store StoreConfig
	Page  PageConfig
	Log   LogConfig
}

// HTTPConfig configures the web server
type HTTPConfig struct {
	Port      string
	StaticDir string // optional directory of static assets served at /static/
}

// StoreConfig selects and locates the menu catalog
type StoreConfig struct {
	Driver       string // "sqlite" or "postgres"
	SQLitePath   string
	PostgresURL  string
	Postgres     PostgresConfig
	SeedDefaults bool
}

// PostgresConfig holds the parts of a Postgres connection URL
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// PageConfig configures the rendered page
type PageConfig struct {
	TemplatePath string // empty means the built-in template
}

// LogConfig configures logging
type LogConfig struct {
	Level string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if there is one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	return &Config{
		HTTP: HTTPConfig{
			Port:      getEnv("PORT", "8080"),
			StaticDir: getEnv("STATIC_DIR", ""),
		},
		Store: StoreConfig{
			Driver:      getEnv("STORE_DRIVER", "sqlite"),
			SQLitePath:  getEnv("DB_PATH", "./foodlist.db"),
			PostgresURL: getEnv("DATABASE_URL", ""),
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     port,
				User:     getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", ""),
				Database: getEnv("DB_NAME", "foodlist"),
			},
			SeedDefaults: getBool("SEED_DEFAULTS", true),
		},
		Page: PageConfig{
			TemplatePath: getEnv("TEMPLATE_PATH", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

// ForDriver returns the data source for driver. A non-empty override wins,
// otherwise the DSN is derived for driver rather than the configured one.
func (c StoreConfig) ForDriver(driver, override string) string {
	if override != "" {
		return override
	}
	c.Driver = driver
	return c.DSN()
}

// DSN returns the data source for the configured driver
func (c StoreConfig) DSN() string {
	if strings.HasPrefix(strings.ToLower(c.Driver), "postgres") || c.Driver == "pgx" {
		if c.PostgresURL != "" {
			return c.PostgresURL
		}
		return c.Postgres.URL()
	}
	return c.SQLitePath
}

// URL returns the postgres:// connection URL
func (c PostgresConfig) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	return u.String()
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Logger returns a logrus logger at the configured level. An empty level
// means info; unknown levels fall back to info with a warning.
func (c LogConfig) Logger() *logrus.Logger {
	logger := logrus.New()
	level, ok := parseLevel(c.Level)
	if !ok {
		logger.WithField("level", c.Level).Warn("Unknown log level, using info")
	}
	logger.SetLevel(level)
	return logger
}

func parseLevel(s string) (logrus.Level, bool) {
	if s == "" {
		return logrus.InfoLevel, true
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return logrus.InfoLevel, false
	}
	return level, true
}
