// Package config loads the storefront settings from defaults, an optional YAML file and the
// environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileEnv names the environment variable that selects the config file. It wins over --config.
const FileEnv = "FURNIRO_CONFIG_FILE"

// Database drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds every runtime setting.
type Config struct {
	AppPort            string        `mapstructure:"APP_PORT"`
	DBDriver           string        `mapstructure:"DB_DRIVER"`
	DBDSN              string        `mapstructure:"DB_DSN"`
	JWTSecret          string        `mapstructure:"JWT_SECRET"`
	JWTTTL             time.Duration `mapstructure:"JWT_TTL"`
	RabbitMQURL        string        `mapstructure:"RABBITMQ_URL"`
	RabbitMQRetries    int           `mapstructure:"RABBITMQ_DIAL_RETRIES"`
	CloudinaryURL      string        `mapstructure:"CLOUDINARY_URL"`
	CloudinaryFolder   string        `mapstructure:"CLOUDINARY_FOLDER"`
	ItemsPerPage       int           `mapstructure:"ITEMS_PER_PAGE"`
	FilterMaxPrice     int64         `mapstructure:"FILTER_MAX_PRICE"`
	SessionIdleTimeout time.Duration `mapstructure:"SESSION_IDLE_TIMEOUT"`
	SeedProducts       bool          `mapstructure:"SEED_PRODUCTS"`
	AdminEmail         string        `mapstructure:"ADMIN_EMAIL"`
	AdminPassword      string        `mapstructure:"ADMIN_PASSWORD"`
}

var defaults = map[string]any{
	"APP_PORT":              ":8080",
	"DB_DRIVER":             DriverSQLite,
	"DB_DSN":                "furniro.db",
	"JWT_SECRET":            "supersecretjwtkey",
	"JWT_TTL":               24 * time.Hour,
	"RABBITMQ_URL":          "",
	"RABBITMQ_DIAL_RETRIES": 5,
	"CLOUDINARY_URL":        "",
	"CLOUDINARY_FOLDER":     "furniro/products",
	"ITEMS_PER_PAGE":        12,
	"FILTER_MAX_PRICE":      int64(10_000_000),
	"SESSION_IDLE_TIMEOUT":  30 * time.Minute,
	"SEED_PRODUCTS":         true,
	"ADMIN_EMAIL":           "admin@furniro.com",
	"ADMIN_PASSWORD":        "",
}

// Validate checks settings the server cannot start without.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMemory, DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}
	if c.ItemsPerPage < 1 {
		return fmt.Errorf("ITEMS_PER_PAGE must be positive, got %d", c.ItemsPerPage)
	}
	if c.FilterMaxPrice <= 0 {
		return fmt.Errorf("FILTER_MAX_PRICE must be positive, got %d", c.FilterMaxPrice)
	}
	return nil
}

// Loader reads the configuration and keeps watching its file.
type Loader struct {
	v    *viper.Viper
	file string

	mu          sync.Mutex
	subscribers []func(*Config)
}

// Load builds the configuration. args are the command line arguments without the program
// name; only --config is recognised.
func Load(args []string) (*Config, *Loader, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	l := &Loader{v: v, file: configFile(args)}
	if l.file != "" {
		v.SetConfigFile(l.file)
		if err := v.ReadInConfig(); err != nil {
			return nil, nil, fmt.Errorf("failed to read config file %s: %w", l.file, err)
		}
	}

	cfg, err := l.decode()
	if err != nil {
		return nil, nil, err
	}
	return cfg, l, nil
}

func configFile(args []string) string {
	flags := pflag.NewFlagSet("furniro", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	path := flags.String("config", "", "path to a YAML config file")
	_ = flags.Parse(args)
	if env := os.Getenv(FileEnv); env != "" {
		return env
	}
	return *path
}

func (l *Loader) decode() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// OnChange registers fn to run with the new configuration after every valid file change.
func (l *Loader) OnChange(fn func(*Config)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// Watch starts watching the config file. It does nothing when no file was loaded.
func (l *Loader) Watch() {
	if l.file == "" {
		return
	}
	l.v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)
		cfg, err := l.decode()
		if err != nil {
			log.Printf("Ignoring config change: %v", err)
			return
		}
		l.mu.Lock()
		subs := make([]func(*Config), len(l.subscribers))
		copy(subs, l.subscribers)
		l.mu.Unlock()
		for _, fn := range subs {
			fn(cfg)
		}
	})
	l.v.WatchConfig()
}
