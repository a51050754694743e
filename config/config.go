// Package config loads the block-walk settings from flags, environment and an
// optional config file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	berr "github.com/next-trace/scg-event-bus/contract/errors"
	"github.com/next-trace/scg-event-bus/block"
)

const (
	// EnvPrefix prefixes every environment override, e.g. BLOCKWALK_LOG_LEVEL.
	EnvPrefix = "BLOCKWALK"

	keyBlocks    = "blocks"
	keyLogLevel  = "log.level"
	keySimRadius = "sim.radius"
	keySimTicks  = "sim.ticks"

	flagBlocks   = "blocks"
	flagLogLevel = "log-level"
	flagRadius   = "radius"
	flagTicks    = "ticks"
)

// Config is the resolved configuration.
type Config struct {
	// Blocks are the raw identifiers of the blocks walked on as full cubes.
	Blocks   []string
	LogLevel string
	Sim      Sim

	// File is the config file that was read, empty when none was found.
	File string
}

// Sim configures the demo simulation loop.
type Sim struct {
	Radius int
	Ticks  int
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice(flagBlocks, nil, "blocks to walk on (namespace:path, comma separated)")
	fs.String(flagLogLevel, "", "log level (debug, info, warn, error)")
	fs.Int(flagRadius, 0, "query radius around the player, in blocks")
	fs.Int(flagTicks, 0, "number of simulation ticks to run")
}

// Load resolves the configuration. path may be empty, in which case
// $HOME/.blockwalk.{yaml,toml,json} is used if present. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(keyBlocks, []string{string(block.Cobweb), string(block.Snow)})
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keySimRadius, 2)
	v.SetDefault(keySimTicks, 1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, flags); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("config home dir: %w", errors.Join(berr.ErrConfigLoadFailed, err))
		}

		v.AddConfigPath(home)
		v.SetConfigName(".blockwalk")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config read: %w", errors.Join(berr.ErrConfigLoadFailed, err))
		}
	}

	return &Config{
		Blocks:   splitList(v.GetStringSlice(keyBlocks)),
		LogLevel: v.GetString(keyLogLevel),
		Sim: Sim{
			Radius: v.GetInt(keySimRadius),
			Ticks:  v.GetInt(keySimTicks),
		},
		File: v.ConfigFileUsed(),
	}, nil
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	bindings := map[string]string{
		keyBlocks:    flagBlocks,
		keyLogLevel:  flagLogLevel,
		keySimRadius: flagRadius,
		keySimTicks:  flagTicks,
	}

	for key, name := range bindings {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("config bind %s: %w", name, errors.Join(berr.ErrConfigLoadFailed, err))
		}
	}

	return nil
}

// splitList accepts both list values and a single comma separated string,
// which is what environment overrides produce.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))

	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}

	return out
}

// BlockSet parses Blocks. Every malformed identifier is reported.
func (c *Config) BlockSet() (block.Set, error) {
	ids := make([]block.ID, 0, len(c.Blocks))

	var errs []error

	for _, raw := range c.Blocks {
		id, err := block.ParseID(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		ids = append(ids, id)
	}

	if len(errs) > 0 {
		return block.Set{}, fmt.Errorf("config blocks: %w", errors.Join(errs...))
	}

	return block.NewSet(ids...), nil
}

// Logger builds a text logger at the configured level.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("config log level %q: %w", c.LogLevel, errors.Join(berr.ErrConfigLoadFailed, err))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
