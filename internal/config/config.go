// Package config resolves runtime settings from defaults, TIMEWORTH_*
// environment variables and command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"timeworth/internal/share"
)

const EnvPrefix = "TIMEWORTH_"

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Server ServerConfig `koanf:"server"`
	Donate DonateConfig `koanf:"donate"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"     validate:"min=0,max=65535"`
	// BaseURL prefixes share links. Empty means links are relative.
	BaseURL string `koanf:"base_url" validate:"omitempty,url"`
}

type DonateConfig struct {
	Bank    string `koanf:"bank"    validate:"required"`
	Holder  string `koanf:"holder"  validate:"required"`
	Account string `koanf:"account" validate:"required"`
}

type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=debug info warn error"`
	JSON   bool   `koanf:"json"`
	Source bool   `koanf:"source"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "",
			Port: 0,
		},
		Donate: DonateConfig{
			Bank:    "toss",
			Holder:  "TimeWorth",
			Account: "0000-0000-0000",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// flagKeys maps command-line flags onto config paths.
var flagKeys = map[string]string{
	"host":       "server.host",
	"port":       "server.port",
	"base-url":   "server.base_url",
	"log-level":  "log.level",
	"log-json":   "log.json",
	"log-source": "log.source",
}

// Load builds the config. flags may be nil; only flags the user actually
// set override earlier sources.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: transformEnvKey,
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	if flags != nil {
		var setErr error
		flags.Visit(func(f *pflag.Flag) {
			path, ok := flagKeys[f.Name]
			if !ok || setErr != nil {
				return
			}
			setErr = k.Set(path, f.Value.String())
		})
		if setErr != nil {
			return nil, fmt.Errorf("failed to apply flags: %w", setErr)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// transformEnvKey converts TIMEWORTH_SERVER_BASE_URL to server.base_url.
// The first segment is the section; the rest is the field name.
func transformEnvKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	if len(parts) < 2 {
		return "", nil
	}
	return parts[0] + "." + strings.Join(parts[1:], "_"), value
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Addr is the listen address for the web server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Donation converts the donate section for the share package.
func (d DonateConfig) Donation() share.Donation {
	return share.Donation{Bank: d.Bank, Holder: d.Holder, Account: d.Account}
}
