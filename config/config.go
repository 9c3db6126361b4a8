package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"

	"hotel-reservations/utils"
)

type Config struct {
	Port        string
	DSN         string
	CORSOrigins []string

	LogLevel   string
	LogFormat  string
	LogFile    string
	DBLogLevel string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	SeedRooms       bool
	GinMode         string
	ShutdownTimeout time.Duration
}

// Load reads .env when present and then the process environment.
// A missing .env is not an error.
func Load() (*Config, error) {
	envFileErr := godotenv.Load()

	dsn, err := resolveMySQLDSN()
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	cfg := &Config{
		Port:            envOrDefault("PORT", "8080"),
		DSN:             dsn,
		CORSOrigins:     parseCorsOrigins(os.Getenv("CORS_ORIGINS")),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		LogFile:         strings.TrimSpace(os.Getenv("LOG_FILE")),
		DBLogLevel:      envOrDefault("DB_LOG_LEVEL", "warn"),
		MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 20),
		MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
		SeedRooms:       envBool("SEED_ROOMS", false),
		GinMode:         envOrDefault("GIN_MODE", "release"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	if envFileErr != nil && !os.IsNotExist(envFileErr) {
		return cfg, fmt.Errorf("load .env: %w", envFileErr)
	}
	return cfg, nil
}

func (c *Config) LoggerOptions() utils.LoggerOptions {
	return utils.LoggerOptions{Level: c.LogLevel, Format: c.LogFormat, File: c.LogFile}
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n < 0 {
		return def
	}
	return n
}

func envBool(key string, def bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// resolveMySQLDSN accepts MYSQL_URL / DATABASE_URL (mysql:// URL or a raw
// driver DSN) and otherwise builds the DSN from DB_* variables.
func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		cfg, err := gomysql.ParseDSN(raw)
		if err != nil {
			return "", err
		}
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	}

	cfg := gomysql.NewConfig()
	cfg.User = envOrDefault("DB_USER", "root")
	cfg.Passwd = os.Getenv("DB_PASS")
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(envOrDefault("DB_HOST", "127.0.0.1"), envOrDefault("DB_PORT", "3306"))
	cfg.DBName = envOrDefault("DB_NAME", "hotel")
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN(), nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	cfg := gomysql.NewConfig()
	cfg.User = u.User.Username()
	cfg.Passwd, _ = u.User.Password()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(u.Hostname(), port)
	cfg.DBName = dbName
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	for key, values := range u.Query() {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "parseTime", "loc":
			// fixed above; reservations are stored as UTC dates
		default:
			cfg.Params[key] = values[0]
		}
	}
	return cfg.FormatDSN(), nil
}
