package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/flashcards/internal/srs"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Store     StoreConfig     `mapstructure:"store"`
	Client    ClientConfig    `mapstructure:"client"`
}

type ServerConfig struct {
	Port        int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS        CORSConfig `mapstructure:"cors"`
	TLSCertFile string     `mapstructure:"tls_cert_file" validate:"omitempty,file"`
	TLSKeyFile  string     `mapstructure:"tls_key_file" validate:"omitempty,file"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	// Path is the SQLite database file, or ":memory:".
	Path string `mapstructure:"path" validate:"required_if=Driver sqlite"`
}

type SchedulerConfig struct {
	HardFactor             float64 `mapstructure:"hard_factor" validate:"gt=0"`
	EasyBonus              float64 `mapstructure:"easy_bonus" validate:"gt=0"`
	MinInterval            int     `mapstructure:"min_interval" validate:"min=1"`
	MaxInterval            int     `mapstructure:"max_interval" validate:"gtefield=MinInterval"`
	InitialFactor          int     `mapstructure:"initial_factor" validate:"gt=0"`
	MinFactor              int     `mapstructure:"min_factor" validate:"gt=0"`
	HardFactorDecrease     int     `mapstructure:"hard_factor_decrease" validate:"min=0"`
	EasyGraduatingInterval int     `mapstructure:"easy_graduating_interval" validate:"min=1"`
	LearningStepsMinutes   []int   `mapstructure:"learning_steps_minutes" validate:"min=1,dive,min=1"`
}

// SRS converts the loaded values into scheduling constants.
func (c SchedulerConfig) SRS() srs.Config {
	steps := make([]int, len(c.LearningStepsMinutes))
	copy(steps, c.LearningStepsMinutes)
	return srs.Config{
		HardFactor:             c.HardFactor,
		EasyBonus:              c.EasyBonus,
		MinInterval:            c.MinInterval,
		MaxInterval:            c.MaxInterval,
		InitialFactor:          c.InitialFactor,
		MinFactor:              c.MinFactor,
		HardFactorDecrease:     c.HardFactorDecrease,
		EasyGraduatingInterval: c.EasyGraduatingInterval,
		InitialSteps:           len(steps),
		LearningStepsMinutes:   steps,
	}
}

type StoreConfig struct {
	RetryAttempts    uint `mapstructure:"retry_attempts" validate:"min=1"`
	RetryDelayMillis int  `mapstructure:"retry_delay_millis" validate:"min=0"`
}

// RetryDelay returns the initial back-off between store retries.
func (c StoreConfig) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMillis) * time.Millisecond
}

type ClientConfig struct {
	ServerURL string `mapstructure:"server_url" validate:"omitempty,url"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flashcards")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", filepath.Join("data", "flashcards.db"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "flashcards")
	v.SetDefault("database.username", "user")
	v.SetDefault("scheduler.hard_factor", srs.DefaultHardFactor)
	v.SetDefault("scheduler.easy_bonus", srs.DefaultEasyBonus)
	v.SetDefault("scheduler.min_interval", srs.DefaultMinInterval)
	v.SetDefault("scheduler.max_interval", srs.DefaultMaxInterval)
	v.SetDefault("scheduler.initial_factor", srs.DefaultInitialFactor)
	v.SetDefault("scheduler.min_factor", srs.DefaultMinFactor)
	v.SetDefault("scheduler.hard_factor_decrease", srs.DefaultHardFactorDecrease)
	v.SetDefault("scheduler.easy_graduating_interval", srs.DefaultEasyGraduatingInterval)
	v.SetDefault("scheduler.learning_steps_minutes", srs.DefaultLearningStepsMinutes())
	v.SetDefault("store.retry_attempts", 3)
	v.SetDefault("store.retry_delay_millis", 100)
	v.SetDefault("client.server_url", "http://localhost:8080")

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("client.server_url", "FLASHCARDS_SERVER_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind FLASHCARDS_SERVER_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// Load reads configFile, or config.yml from the default search paths when it is empty.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}
