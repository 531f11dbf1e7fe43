package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator"
	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"

	"github.com/DanielPopoola/ficmart-testdata/internal/card"
)

const (
	EnvPrefix = "TESTDATA_"
	// FileEnv names an optional dotenv-style properties file loaded before the environment.
	FileEnv = EnvPrefix + "CONFIG_FILE"
)

type Config struct {
	Mailosaur MailosaurConfig `koanf:"mailosaur"`
	Logger    LoggerConfig    `koanf:"logger"`
	Generator GeneratorConfig `koanf:"generator"`

	k *koanf.Koanf
}

type MailosaurConfig struct {
	DomainName string `koanf:"domain_name" validate:"required,startswith=@"`
}

type LoggerConfig struct {
	Level string `koanf:"level" validate:"omitempty,oneof=debug info warn error"`
}

type GeneratorConfig struct {
	Seed        uint64 `koanf:"seed"`
	DefaultCard string `koanf:"default_card" validate:"required"`
}

var defaults = map[string]interface{}{
	"logger.level":           "info",
	"generator.seed":         0,
	"generator.default_card": string(card.Visa),
}

// keyFromEnv maps TESTDATA_MAILOSAUR__DOMAIN_NAME to mailosaur.domain_name.
func keyFromEnv(s string) string {
	return strings.ReplaceAll(
		strings.ToLower(strings.TrimPrefix(s, EnvPrefix)),
		"__",
		".",
	)
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	if path := os.Getenv(FileEnv); path != "" {
		if err := loadFile(k, path); err != nil {
			logger.Error("failed to load config file", "path", path, "error", err)
			return nil, err
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", keyFromEnv), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{k: k}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if _, err := card.ParseCardType(mainConfig.Generator.DefaultCard); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, fmt.Errorf("generator.default_card: %w", err)
	}

	return mainConfig, nil
}

// loadFile reads KEY=value lines using the same key mapping as the environment,
// so MAILOSAUR__DOMAIN_NAME in the file sets mailosaur.domain_name.
func loadFile(k *koanf.Koanf, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return err
	}

	props := make(map[string]interface{}, len(values))
	for key, value := range values {
		props[keyFromEnv(key)] = value
	}

	return k.Load(confmap.Provider(props, "."), nil)
}

// Property returns a raw configuration value by its dotted key, or "" when unset.
func (c *Config) Property(key string) string {
	if c.k == nil {
		return ""
	}
	return c.k.String(key)
}

// DefaultCardType is the catalog entry used when a caller names none.
func (c *Config) DefaultCardType() card.CardType {
	return card.CardType(c.Generator.DefaultCard)
}

// NewLogger builds the process logger at the configured level.
func (c LoggerConfig) NewLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: c.SlogLevel(),
	}))
}

func (c LoggerConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
