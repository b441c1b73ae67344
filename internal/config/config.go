package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/imtihan/internal/domain/entities"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrUnknownBackend              = errors.New("unknown session backend")
)

// Session backends.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env           string           `mapstructure:"env"`            // current application environment (local, dev, prod etc)
	QuestionsPath string           `mapstructure:"questions_path"` // path to the JSON or YAML question bank
	Chunks        []entities.Chunk `mapstructure:"chunks"`         // lecture groups, defaults apply when empty
	Session       Session          `mapstructure:"session"`        // session persistence section
	DB            DB               `mapstructure:"database"`       // database configuration section
	Log           Log              `mapstructure:"log"`            // log file section
}

// Session configures where the running attempt is saved.
type Session struct {
	Backend    string        `mapstructure:"backend"`     // file, sqlite, postgres or memory
	Dir        string        `mapstructure:"dir"`         // directory of the file backend
	SQLitePath string        `mapstructure:"sqlite_path"` // database file of the sqlite backend
	Key        string        `mapstructure:"key"`         // storage key of the session
	TTL        time.Duration `mapstructure:"ttl"`         // how long a started session stays valid
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                 // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections"`   // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"` // maximum lifetime of a single connection
}

// Log configures console verbosity and the optional rotated log file.
type Log struct {
	Level      string `mapstructure:"level"`        // minimum console level
	File       string `mapstructure:"file"`         // empty disables the file
	MaxSizeMB  int    `mapstructure:"max_size_mb"`  // size before rotation
	MaxBackups int    `mapstructure:"max_backups"`  // rotated files to keep
	MaxAgeDays int    `mapstructure:"max_age_days"` // days to keep rotated files
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// Load reads configuration from config files and environment variables.
// Without paths, config/config.yaml in the working directory is used.
func Load(paths ...string) (*Config, error) {
	// Load .env file if it exists.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("questions_path", "data/questions.json")
	v.SetDefault("session.backend", BackendFile)
	v.SetDefault("session.dir", ".imtihan")
	v.SetDefault("session.sqlite_path", ".imtihan/sessions.db")
	v.SetDefault("session.key", "exam_session")
	v.SetDefault("session.ttl", "168h")
	v.SetDefault("database.max_connections", 4)
	v.SetDefault("database.max_conn_lifetime", "30m")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("questions_path", "QUESTIONS_PATH")
	_ = v.BindEnv("session.backend", "SESSION_BACKEND")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.DB.URL = v.GetString("database_url")

	cfg.Session.Backend = strings.ToLower(strings.TrimSpace(cfg.Session.Backend))
	switch cfg.Session.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	case BackendPostgres:
		if cfg.DB.URL == "" {
			return nil, ErrMissingEnvironmentVariables
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Session.Backend)
	}

	return &cfg, nil
}
