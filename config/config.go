// Package config loads the game settings through viper: defaults, an
// optional YAML file, DOGRUN_* environment variables and command-line flags,
// in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/milk9111/dogrun/character"
)

// ErrInvalid wraps every validation failure returned by Load.
var ErrInvalid = errors.New("config: invalid configuration")

type WindowConfig struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	Title     string `mapstructure:"title"`
	Resizable bool   `mapstructure:"resizable"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "json" or "console".
	Format string `mapstructure:"format"`
}

type GameConfig struct {
	Prefab          string `mapstructure:"prefab"`
	Background      string `mapstructure:"background"`
	SelectionPolicy string `mapstructure:"selection_policy"`
	// Script is the tengo source used by the "script" policy.
	Script    string `mapstructure:"script"`
	Debug     bool   `mapstructure:"debug"`
	HotReload bool   `mapstructure:"hot_reload"`
	PrefabDir string `mapstructure:"prefab_dir"`
	// MaxDelta caps the seconds a single tick may advance.
	MaxDelta float64 `mapstructure:"max_delta"`
}

type Config struct {
	Window  WindowConfig  `mapstructure:"window"`
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate reports every violation at once.
func (c Config) Validate() error {
	var errs []string

	if c.Window.Width < 1 {
		errs = append(errs, fmt.Sprintf("window.width must be >= 1, got %d", c.Window.Width))
	}
	if c.Window.Height < 1 {
		errs = append(errs, fmt.Sprintf("window.height must be >= 1, got %d", c.Window.Height))
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	if g.Prefab == "" {
		errs = append(errs, "game.prefab must not be empty")
	}
	if g.Background == "" {
		errs = append(errs, "game.background must not be empty")
	}
	validPolicy := false
	for _, name := range character.PolicyNames {
		if g.SelectionPolicy == name {
			validPolicy = true
			break
		}
	}
	if !validPolicy {
		errs = append(errs, fmt.Sprintf("game.selection_policy must be one of [%s], got %q",
			strings.Join(character.PolicyNames, ", "), g.SelectionPolicy))
	}
	if g.SelectionPolicy == character.PolicyScript && g.Script == "" {
		errs = append(errs, "game.script must be set when game.selection_policy is script")
	}
	if g.HotReload && g.PrefabDir == "" {
		errs = append(errs, "game.prefab_dir must be set when game.hot_reload is on")
	}
	if g.MaxDelta <= 0 {
		errs = append(errs, fmt.Sprintf("game.max_delta must be > 0, got %v", g.MaxDelta))
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Flags returns the command-line flag set Load binds. Parse it before
// calling Load.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.Bool("debug", false, "show the debug overlay")
	fs.String("policy", "", "sheet selection policy: "+strings.Join(character.PolicyNames, ", "))
	fs.Bool("hot-reload", false, "watch the prefab directory and re-apply edits")
	fs.String("log-level", "", "minimum log level")
	return fs
}

var flagKeys = map[string]string{
	"debug":      "game.debug",
	"policy":     "game.selection_policy",
	"hot-reload": "game.hot_reload",
	"log-level":  "logging.level",
}

// Load builds the configuration. path may be empty; flags may be nil. Only
// flags the user actually set override lower layers.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("DOGRUN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" && flags != nil {
		if p, err := flags.GetString("config"); err == nil {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "dogrun")
	v.SetDefault("window.resizable", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("game.prefab", "player.yaml")
	v.SetDefault("game.background", "background.yaml")
	v.SetDefault("game.selection_policy", character.PolicyReleaseFirst)
	v.SetDefault("game.script", "select_sheet.tengo")
	v.SetDefault("game.debug", false)
	v.SetDefault("game.hot_reload", false)
	v.SetDefault("game.prefab_dir", "prefabs")
	v.SetDefault("game.max_delta", 0.25)
}
