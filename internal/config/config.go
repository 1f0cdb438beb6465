// Package config loads the service configuration from a YAML file.
// ${VAR} references in the file are expanded from the environment
// before parsing, so secrets can stay out of the file.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gartstein/employees/internal/db"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Storage backends selectable with STORAGE.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMongo    = "mongo"
)

const (
	defaultHTTPPort      = 8080
	defaultDBPort        = 5432
	defaultSSLMode       = "disable"
	defaultSQLitePath    = "employees.db"
	defaultMongoDatabase = "employees"
	defaultTopic         = "employee-events"
	defaultLogLevel      = "info"
)

// Config struct for YAML configuration
type Config struct {
	HTTPPort      int      `yaml:"HTTP_PORT"`
	Storage       string   `yaml:"STORAGE"`
	DBHost        string   `yaml:"DB_HOST"`
	DBPort        int      `yaml:"DB_PORT"`
	DBUser        string   `yaml:"DB_USER"`
	DBPassword    string   `yaml:"DB_PASSWORD"`
	DBName        string   `yaml:"DB_NAME"`
	DBSSLMode     string   `yaml:"DB_SSLMODE"`
	SQLitePath    string   `yaml:"SQLITE_PATH"`
	MongoURI      string   `yaml:"MONGO_URI"`
	MongoDatabase string   `yaml:"MONGO_DATABASE"`
	KafkaBrokers  []string `yaml:"KAFKA_BROKERS"`
	Topic         string   `yaml:"TOPIC"`
	LogLevel      string   `yaml:"LOG_LEVEL"`
}

// Load reads, expands and validates the configuration at path.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}
	return Parse(b)
}

// envRef matches ${VAR}. A bare $ is left alone so values such as
// passwords may contain it.
var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references with the environment value, or the
// empty string when VAR is unset.
func expandEnv(raw []byte) []byte {
	return envRef.ReplaceAllFunc(raw, func(ref []byte) []byte {
		return []byte(os.Getenv(string(envRef.FindSubmatch(ref)[1])))
	})
}

// Parse is Load without the file system.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(expandEnv(raw), &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validateAndNormalize() error {
	if c.HTTPPort == 0 {
		c.HTTPPort = defaultHTTPPort
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("config: HTTP_PORT out of range: %d", c.HTTPPort)
	}

	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	if c.Storage == "" {
		c.Storage = StorageMemory
	}

	switch c.Storage {
	case StorageMemory:
	case StoragePostgres:
		if c.DBHost == "" {
			return fmt.Errorf("config: DB_HOST must be set for postgres storage")
		}
		if c.DBUser == "" {
			return fmt.Errorf("config: DB_USER must be set for postgres storage")
		}
		if c.DBName == "" {
			return fmt.Errorf("config: DB_NAME must be set for postgres storage")
		}
		if c.DBPort == 0 {
			c.DBPort = defaultDBPort
		}
		if c.DBSSLMode == "" {
			c.DBSSLMode = defaultSSLMode
		}
	case StorageSQLite:
		if c.SQLitePath == "" {
			c.SQLitePath = defaultSQLitePath
		}
	case StorageMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("config: MONGO_URI must be set for mongo storage")
		}
		if c.MongoDatabase == "" {
			c.MongoDatabase = defaultMongoDatabase
		}
	default:
		return fmt.Errorf("config: unknown STORAGE %q", c.Storage)
	}

	brokers := c.KafkaBrokers[:0]
	for _, b := range c.KafkaBrokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	c.KafkaBrokers = brokers
	if len(c.KafkaBrokers) > 0 && c.Topic == "" {
		c.Topic = defaultTopic
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if _, err := zap.ParseAtomicLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	return nil
}

// EventsEnabled reports whether change events go to Kafka.
func (c *Config) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// Level returns the configured log level.
func (c *Config) Level() zap.AtomicLevel {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return level
}

// DBConfig maps the relational settings onto the GORM repository config.
func (c *Config) DBConfig() *db.Config {
	driver := db.DriverPostgres
	if c.Storage == StorageSQLite {
		driver = db.DriverSQLite
	}
	return &db.Config{
		Driver:     driver,
		Host:       c.DBHost,
		Port:       c.DBPort,
		User:       c.DBUser,
		Password:   c.DBPassword,
		DBName:     c.DBName,
		SSLMode:    c.DBSSLMode,
		SQLitePath: c.SQLitePath,
	}
}
