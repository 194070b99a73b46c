package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/scottbass3/manifestview/internal/feed"
	"github.com/scottbass3/manifestview/internal/filter"
	"github.com/scottbass3/manifestview/internal/render"
)

const EnvPrefix = "MANIFESTVIEW"

type Config struct {
	Feed       Feed     `mapstructure:"feed" json:"feed"`
	Registry   string   `mapstructure:"registry" json:"registry,omitempty"`
	Dimensions []string `mapstructure:"dimensions" json:"dimensions,omitempty"`
	Layers     bool     `mapstructure:"layers" json:"layers,omitempty"`
	Sources    []Source `mapstructure:"sources" json:"sources,omitempty"`
	Log        Log      `mapstructure:"log" json:"log"`
}

// Feed locates the image-info document. Location, when set, replaces the
// host/org/repo/ref/file composition entirely.
type Feed struct {
	Host     string `mapstructure:"host" json:"host,omitempty"`
	Org      string `mapstructure:"org" json:"org,omitempty"`
	Repo     string `mapstructure:"repo" json:"repo,omitempty"`
	Ref      string `mapstructure:"ref" json:"ref,omitempty"`
	File     string `mapstructure:"file" json:"file,omitempty"`
	Location string `mapstructure:"location" json:"location,omitempty"`
}

type Log struct {
	Level string `mapstructure:"level" json:"level,omitempty"`
	File  string `mapstructure:"file" json:"file,omitempty"`
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"feed":      "feed.location",
	"layers":    "layers",
	"log-level": "log.level",
	"log-file":  "log.file",
}

func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "manifestview", "config.json")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "manifestview", "config.json")
	}
	return "config.json"
}

func Default() Config {
	source := feed.DefaultSource()
	return Config{
		Feed: Feed{
			Host: source.Host,
			Org:  source.Org,
			Repo: source.Repo,
			Ref:  source.Ref,
			File: source.File,
		},
		Registry:   render.DefaultRegistry,
		Dimensions: filter.DefaultNames(),
		Log:        Log{Level: "info"},
	}
}

// Load reads the config file at path (DefaultPath when empty), then environment
// variables, then any changed flags. A missing file is only an error when the path
// was given explicitly.
func Load(fs afero.Fs, path string, flags *pflag.FlagSet) (Config, error) {
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("json")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v, Default())

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("stat config %s: %w", path, err)
	}
	if exists {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config file %s not found", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("feed.host", cfg.Feed.Host)
	v.SetDefault("feed.org", cfg.Feed.Org)
	v.SetDefault("feed.repo", cfg.Feed.Repo)
	v.SetDefault("feed.ref", cfg.Feed.Ref)
	v.SetDefault("feed.file", cfg.Feed.File)
	v.SetDefault("feed.location", cfg.Feed.Location)
	v.SetDefault("registry", cfg.Registry)
	v.SetDefault("dimensions", cfg.Dimensions)
	v.SetDefault("layers", cfg.Layers)
	v.SetDefault("sources", []Source{})
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
}

func (c *Config) normalize() error {
	c.Feed.Host = strings.TrimSpace(c.Feed.Host)
	c.Feed.Org = strings.TrimSpace(c.Feed.Org)
	c.Feed.Repo = strings.TrimSpace(c.Feed.Repo)
	c.Feed.Ref = strings.TrimSpace(c.Feed.Ref)
	c.Feed.File = strings.TrimSpace(c.Feed.File)
	c.Feed.Location = strings.TrimSpace(c.Feed.Location)
	c.Registry = strings.TrimSpace(c.Registry)
	if c.Registry == "" {
		c.Registry = render.DefaultRegistry
	}
	if _, err := filter.Lookup(c.Dimensions); err != nil {
		return fmt.Errorf("invalid dimensions: %w", err)
	}

	sources := make([]Source, 0, len(c.Sources))
	for i, source := range c.Sources {
		normalized, err := normalizeSource(source)
		if err != nil {
			return fmt.Errorf("source %d: %w", i+1, err)
		}
		if err := ensureUniqueName(sources, normalized.Name); err != nil {
			return err
		}
		sources = append(sources, normalized)
	}
	c.Sources = sources
	return nil
}

// FilterDimensions resolves the configured dimension names.
func (c Config) FilterDimensions() ([]filter.Dimension, error) {
	return filter.Lookup(c.Dimensions)
}

// Source returns the feed coordinates used when the location does not override them.
func (c Config) Source() feed.Source {
	return feed.Source{
		Host: c.Feed.Host,
		Org:  c.Feed.Org,
		Repo: c.Feed.Repo,
		Ref:  c.Feed.Ref,
		File: c.Feed.File,
	}
}
