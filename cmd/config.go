package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type HTTPConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	Driver     string `mapstructure:"driver"`
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	Name       string `mapstructure:"name"`
	SslMode    string `mapstructure:"sslmode"`
	SQLitePath string `mapstructure:"sqlitePath"`
}

// DSN is the postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SslMode)
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwtSecret"`
	Issuer    string `mapstructure:"issuer"`
}

// RabbitMQConfig configures event publishing. An empty URL disables it.
type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

// JobsConfig holds cron specs of the scheduled jobs. An empty spec disables the job.
type JobsConfig struct {
	DashboardReportSpec string `mapstructure:"dashboardReportSpec"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	Jobs     JobsConfig     `mapstructure:"jobs"`
	Log      LogConfig      `mapstructure:"log"`
}

var envBindings = map[string]string{
	"http.port":                "HTTP_PORT",
	"database.driver":          "DB_DRIVER",
	"database.host":            "DB_HOST",
	"database.port":            "DB_PORT",
	"database.user":            "DB_USER",
	"database.password":        "DB_PASSWORD",
	"database.name":            "DB_NAME",
	"database.sslmode":         "DB_SSLMODE",
	"database.sqlitePath":      "DB_SQLITE_PATH",
	"auth.jwtSecret":           "AUTH_JWT_SECRET",
	"auth.issuer":              "AUTH_ISSUER",
	"rabbitmq.url":             "RABBITMQ_URL",
	"rabbitmq.exchange":        "RABBITMQ_EXCHANGE",
	"jobs.dashboardReportSpec": "JOBS_DASHBOARD_REPORT_SPEC",
	"log.level":                "LOG_LEVEL",
}

// LoadConfig reads an optional .env file, an optional config.yaml from configDirs
// (default "." and "./config") and the environment, environment winning.
func LoadConfig(configDirs ...string) (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(configDirs) == 0 {
		configDirs = []string{".", "./config"}
	}
	for _, dir := range configDirs {
		v.AddConfigPath(dir)
	}

	v.SetDefault("http.port", "8080")
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.sqlitePath", "eshift.db")
	v.SetDefault("rabbitmq.exchange", "eshift.events")
	v.SetDefault("jobs.dashboardReportSpec", "0 * * * * *")
	v.SetDefault("log.level", "info")

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the process cannot start with.
func (c Config) Validate() error {
	var errList []error
	if c.HTTP.Port == "" {
		errList = append(errList, errors.New("http.port is required"))
	}
	if c.Auth.JWTSecret == "" {
		errList = append(errList, errors.New("auth.jwtSecret is required"))
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			errList = append(errList, errors.New("database.host is required for postgres"))
		}
		if c.Database.Name == "" {
			errList = append(errList, errors.New("database.name is required for postgres"))
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			errList = append(errList, errors.New("database.sqlitePath is required for sqlite"))
		}
	default:
		errList = append(errList, fmt.Errorf("database.driver %q is not supported", c.Database.Driver))
	}

	if c.RabbitMQ.URL != "" && c.RabbitMQ.Exchange == "" {
		errList = append(errList, errors.New("rabbitmq.exchange is required when rabbitmq.url is set"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}

// SlogLevel parses log.level (debug, info, warn, error).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q is not supported", l.Level)
	}
	return level, nil
}
