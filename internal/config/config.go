// Package config loads fsidx's TOML configuration file, validates it, and
// produces the typed Config the rest of the program builds on.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"fsidx/internal/ferrors"
	"fsidx/internal/query"
)

// LocateFlags mirrors query.Flags in the shape the TOML [locate] table and
// the CLI's default-flags wiring use, with validation and mapstructure
// tags for viper's decoder.
type LocateFlags struct {
	CaseSensitive    bool   `mapstructure:"case-sensitive"`
	Order            string `mapstructure:"order" validate:"oneof=any-order same-order"`
	Scope            string `mapstructure:"scope" validate:"oneof=whole-path last-element"`
	SmartSpaces      bool   `mapstructure:"smart-spaces"`
	WordBoundaries   bool   `mapstructure:"word-boundaries"`
	LiteralSeparator bool   `mapstructure:"literal-separator"`
	Mode             string `mapstructure:"mode" validate:"oneof=auto plain glob"`
}

// Config is the fully resolved, validated configuration.
type Config struct {
	Roots    []string `mapstructure:"-"`
	DBDir    string    `mapstructure:"-"`
	Defaults LocateFlags
}

// rawConfig is the shape viper decodes the TOML file into before Config's
// fields are derived from it.
type rawConfig struct {
	Index struct {
		Folder []string `mapstructure:"folder" validate:"required,min=1,dive,required"`
		DBPath string   `mapstructure:"dbpath"`
	} `mapstructure:"index"`
	Locate LocateFlags `mapstructure:"locate"`
}

// DefaultLocateFlags returns the LocateFlags defaults from spec.md §3.
func DefaultLocateFlags() LocateFlags {
	return LocateFlags{
		CaseSensitive:    false,
		Order:            "any-order",
		Scope:            "whole-path",
		SmartSpaces:      true,
		WordBoundaries:   false,
		LiteralSeparator: false,
		Mode:             "auto",
	}
}

// Default returns a Config with no roots and every LocateFlags default.
// Load does not fall back to it: when no configuration file is found, Load
// returns ConfigInvalid.
func Default() Config {
	return Config{Defaults: DefaultLocateFlags()}
}

// Load resolves the configuration file search order — explicitPath (from
// -c/--config-file), then $FSIDX_CONFIG_FILE, then $HOME/.fsidx/fsidx.toml,
// then /etc/fsidx/fsidx.toml — reads the first one found, and validates it.
func Load(explicitPath string) (*Config, error) {
	path, err := resolvePath(explicitPath)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("locate.case-sensitive", false)
	v.SetDefault("locate.order", "any-order")
	v.SetDefault("locate.scope", "whole-path")
	v.SetDefault("locate.smart-spaces", true)
	v.SetDefault("locate.word-boundaries", false)
	v.SetDefault("locate.literal-separator", false)
	v.SetDefault("locate.mode", "auto")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %q: %v", ferrors.ConfigInvalid, path, err)
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("%w: decoding %q: %v", ferrors.ConfigInvalid, path, err)
	}

	if err := validator.New().Struct(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ferrors.ConfigInvalid, err)
	}

	dbDir := raw.Index.DBPath
	if dbDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: no dbpath set and $HOME unavailable: %v", ferrors.ConfigInvalid, err)
		}
		dbDir = filepath.Join(home, ".fsidx", "db")
	}

	return &Config{
		Roots:    raw.Index.Folder,
		DBDir:    dbDir,
		Defaults: raw.Locate,
	}, nil
}

// resolvePath applies the config search order without touching the
// filesystem beyond existence checks.
func resolvePath(explicitPath string) (string, error) {
	if explicitPath != "" {
		return explicitPath, nil
	}
	if env := os.Getenv("FSIDX_CONFIG_FILE"); env != "" {
		return env, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, ".fsidx", "fsidx.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	const systemPath = "/etc/fsidx/fsidx.toml"
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath, nil
	}
	return "", fmt.Errorf("%w: no configuration file found in the search path", ferrors.ConfigInvalid)
}

// ToQueryFlags converts the config's default LocateFlags into the query
// package's runtime representation.
func (f LocateFlags) ToQueryFlags() (query.Flags, error) {
	qf := query.DefaultFlags()
	qf.CaseSensitive = f.CaseSensitive
	qf.SmartSpaces = f.SmartSpaces
	qf.WordBoundaries = f.WordBoundaries
	qf.LiteralSeparator = f.LiteralSeparator

	switch f.Order {
	case "", "any-order":
		qf.Order = query.OrderAny
	case "same-order":
		qf.Order = query.OrderSame
	default:
		return qf, fmt.Errorf("%w: unknown order %q", ferrors.ConfigInvalid, f.Order)
	}

	switch f.Scope {
	case "", "whole-path":
		qf.Scope = query.ScopeWholePath
	case "last-element":
		qf.Scope = query.ScopeLastElement
	default:
		return qf, fmt.Errorf("%w: unknown scope %q", ferrors.ConfigInvalid, f.Scope)
	}

	switch f.Mode {
	case "", "auto":
		qf.Mode = query.ModeAuto
	case "plain":
		qf.Mode = query.ModePlain
	case "glob":
		qf.Mode = query.ModeGlob
	default:
		return qf, fmt.Errorf("%w: unknown mode %q", ferrors.ConfigInvalid, f.Mode)
	}

	return qf, nil
}
