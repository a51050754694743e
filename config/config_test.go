package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"

	berr "github.com/next-trace/scg-event-bus/contract/errors"
	"github.com/next-trace/scg-event-bus/block"
	"github.com/next-trace/scg-event-bus/config"
)

func isolateHome(t *testing.T) string {
	t.Helper()

	homedir.DisableCache = true
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolateHome(t)

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	set, err := cfg.BlockSet()
	if err != nil {
		t.Fatalf("block set: %v", err)
	}

	if set.Len() != 2 || !set.Contains(block.Cobweb) || !set.Contains(block.Snow) {
		t.Fatalf("default blocks=%v", set.IDs())
	}

	if cfg.LogLevel != "info" || cfg.Sim.Radius != 2 || cfg.Sim.Ticks != 1 || cfg.File != "" {
		t.Fatalf("defaults=%+v", cfg)
	}
}

func TestLoad_FileInHome(t *testing.T) {
	home := isolateHome(t)

	body := "blocks:\n  - cobweb\n  - minecraft:sweet_berry_bush\nlog:\n  level: debug\nsim:\n  radius: 4\n"
	if err := os.WriteFile(filepath.Join(home, ".blockwalk.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load("", nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	set, err := cfg.BlockSet()
	if err != nil {
		t.Fatalf("block set: %v", err)
	}

	if set.Len() != 2 || !set.Contains(block.SweetBerryBush) {
		t.Fatalf("blocks=%v", set.IDs())
	}

	if cfg.LogLevel != "debug" || cfg.Sim.Radius != 4 || cfg.File == "" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "bw.toml")
	if err := os.WriteFile(path, []byte("blocks = [\"cobweb\"]\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	t.Setenv("BLOCKWALK_BLOCKS", "stone,snow")
	t.Setenv("BLOCKWALK_LOG_LEVEL", "warn")

	cfg, err := config.Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	set, err := cfg.BlockSet()
	if err != nil {
		t.Fatalf("block set: %v", err)
	}

	if set.Len() != 2 || !set.Contains(block.Stone) || !set.Contains(block.Snow) {
		t.Fatalf("blocks=%v", set.IDs())
	}

	if cfg.LogLevel != "warn" {
		t.Fatalf("log level=%q", cfg.LogLevel)
	}
}

func TestLoad_FlagsWin(t *testing.T) {
	isolateHome(t)
	t.Setenv("BLOCKWALK_SIM_RADIUS", "7")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)

	if err := fs.Parse([]string{"--radius", "1", "--blocks", "powder_snow"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := config.Load("", fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Sim.Radius != 1 {
		t.Fatalf("radius=%d", cfg.Sim.Radius)
	}

	if len(cfg.Blocks) != 1 || cfg.Blocks[0] != "powder_snow" {
		t.Fatalf("blocks=%v", cfg.Blocks)
	}

	// unchanged flags fall back to defaults, not to flag zero values
	if cfg.Sim.Ticks != 1 || cfg.LogLevel != "info" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolateHome(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if !errors.Is(err, berr.ErrConfigLoadFailed) {
		t.Fatalf("want ErrConfigLoadFailed, got %v", err)
	}
}

func TestBlockSet_ReportsEveryInvalidID(t *testing.T) {
	cfg := &config.Config{Blocks: []string{"cobweb", "bad id", "x:y!"}}

	_, err := cfg.BlockSet()
	if !errors.Is(err, berr.ErrInvalidBlockID) {
		t.Fatalf("want ErrInvalidBlockID, got %v", err)
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Fatalf("want two joined errors, got %v", err)
	}
}

func TestLogger_Levels(t *testing.T) {
	cfg := &config.Config{LogLevel: "debug"}

	l, err := cfg.Logger(os.Stderr)
	if err != nil || l == nil {
		t.Fatalf("logger: %v", err)
	}

	cfg.LogLevel = "loud"
	if _, err := cfg.Logger(os.Stderr); !errors.Is(err, berr.ErrConfigLoadFailed) {
		t.Fatalf("want ErrConfigLoadFailed, got %v", err)
	}
}
