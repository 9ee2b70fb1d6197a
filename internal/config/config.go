package config

import (
	"errors"
	"net"
	"os"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrMissingDatabaseURL = errors.New("no database connection string: set DATABASE_URL or DB_HOST and DB_NAME")
	ErrMissingJWTSecret   = errors.New("JWT_SECRET is required")
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	ServerPort  string
	CertFile    string
	KeyFile     string
	LogLevel    string
	AppEnv      string
}

// TLSEnabled reports whether both halves of the key pair were configured.
func (c *Config) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// Load reads the process environment. Call godotenv.Load first to pick up
// a local .env file.
func Load() (*Config, error) {
	cfg := Config{
		ServerPort: ":8080",
		LogLevel:   "info",
		AppEnv:     "development",
	}

	if port := os.Getenv("SERVER_PORT"); port != "" {
		if !strings.Contains(port, ":") {
			port = ":" + port
		}
		cfg.ServerPort = port
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.AppEnv = env
	}
	cfg.CertFile = os.Getenv("CERT_FILE")
	cfg.KeyFile = os.Getenv("KEY_FILE")

	dsn, err := DatabaseURL()
	if err != nil {
		return nil, err
	}
	cfg.DatabaseURL = dsn

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return &cfg, nil
}

// DatabaseURL prefers DATABASE_URL and otherwise assembles a DSN from the
// DB_* parts. Either way the DSN is normalised through mysql.Config so the
// driver options the store relies on are always set.
func DatabaseURL() (string, error) {
	var dbCfg *mysql.Config

	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		parsed, err := mysql.ParseDSN(raw)
		if err != nil {
			return "", err
		}
		dbCfg = parsed
	} else {
		host := os.Getenv("DB_HOST")
		name := os.Getenv("DB_NAME")
		if host == "" || name == "" {
			return "", ErrMissingDatabaseURL
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "3306"
		}

		dbCfg = mysql.NewConfig()
		dbCfg.User = os.Getenv("DB_USER")
		dbCfg.Passwd = os.Getenv("DB_PASSWORD")
		dbCfg.Net = "tcp"
		dbCfg.Addr = net.JoinHostPort(host, port)
		dbCfg.DBName = name
	}

	dbCfg.ParseTime = true
	dbCfg.ClientFoundRows = true
	// NULL into a NOT NULL column must fail on UPDATE too, not become ''.
	if dbCfg.Params == nil {
		dbCfg.Params = map[string]string{}
	}
	if _, ok := dbCfg.Params["sql_mode"]; !ok {
		dbCfg.Params["sql_mode"] = "'TRADITIONAL'"
	}
	return dbCfg.FormatDSN(), nil
}
