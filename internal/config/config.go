// Package config loads datakit settings from datakit.yaml, DATAKIT_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"datakit/collection"
	"datakit/date"
	"datakit/internal/dataio"
)

const (
	// EnvPrefix prefixes every environment override, e.g. DATAKIT_TREE_ID_FIELD.
	EnvPrefix = "DATAKIT"
	// Name is the config file's base name.
	Name = "datakit"
)

// Keys shared with the command-line flags.
const (
	KeyLogLevel       = "log-level"
	KeyOutput         = "output"
	KeyLocale         = "locale"
	KeySeed           = "seed"
	KeyTreeID         = "tree.id-field"
	KeyTreeParentID   = "tree.parent-id-field"
	KeyTreeChildren   = "tree.children-field"
	KeyTreeRoot       = "tree.root"
	KeyDateLayout     = "date.layout"
	KeyDateTimeLayout = "date.datetime-layout"
)

// Config is the resolved configuration. A non-zero Seed makes random output
// reproducible.
type Config struct {
	LogLevel string     `mapstructure:"log-level"`
	Output   string     `mapstructure:"output"`
	Locale   string     `mapstructure:"locale"`
	Seed     uint64     `mapstructure:"seed"`
	Tree     TreeConfig `mapstructure:"tree"`
	Date     DateConfig `mapstructure:"date"`
}

type TreeConfig struct {
	IDField       string `mapstructure:"id-field"`
	ParentIDField string `mapstructure:"parent-id-field"`
	ChildrenField string `mapstructure:"children-field"`
	Root          any    `mapstructure:"root"`
}

type DateConfig struct {
	Layout         string `mapstructure:"layout"`
	DateTimeLayout string `mapstructure:"datetime-layout"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	tree := collection.DefaultTreeOptions()

	return Config{
		LogLevel: logrus.WarnLevel.String(),
		Output:   string(dataio.JSON),
		Locale:   date.SimplifiedChinese.String(),
		Tree: TreeConfig{
			IDField:       tree.IDField,
			ParentIDField: tree.ParentIDField,
			ChildrenField: tree.ChildrenField,
		},
		Date: DateConfig{
			Layout:         date.DefaultDateLayout,
			DateTimeLayout: date.DefaultDateTimeLayout,
		},
	}
}

// Load reads configuration into v. An explicit path must exist; otherwise
// datakit.yaml is looked up in the working directory and $HOME/.datakit and
// may be absent.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.datakit")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := Default()

	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyLocale, def.Locale)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyTreeID, def.Tree.IDField)
	v.SetDefault(KeyTreeParentID, def.Tree.ParentIDField)
	v.SetDefault(KeyTreeChildren, def.Tree.ChildrenField)
	v.SetDefault(KeyTreeRoot, nil)
	v.SetDefault(KeyDateLayout, def.Date.Layout)
	v.SetDefault(KeyDateTimeLayout, def.Date.DateTimeLayout)
}

// applyDefaults fills values explicitly set to "".
func applyDefaults(cfg *Config) {
	def := Default()

	fill := func(dst *string, val string) {
		if *dst == "" {
			*dst = val
		}
	}

	fill(&cfg.LogLevel, def.LogLevel)
	fill(&cfg.Output, def.Output)
	fill(&cfg.Locale, def.Locale)
	fill(&cfg.Tree.IDField, def.Tree.IDField)
	fill(&cfg.Tree.ParentIDField, def.Tree.ParentIDField)
	fill(&cfg.Tree.ChildrenField, def.Tree.ChildrenField)
	fill(&cfg.Date.Layout, def.Date.Layout)
	fill(&cfg.Date.DateTimeLayout, def.Date.DateTimeLayout)
}

// Validate checks the values that are parsed later, so a bad config fails
// before any input is read.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config %s: %w", KeyLogLevel, err)
	}

	if _, err := dataio.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("config %s: %w", KeyOutput, err)
	}

	if _, err := date.ParseLocale(c.Locale); err != nil {
		return fmt.Errorf("config %s: %w", KeyLocale, err)
	}

	return nil
}

// Level returns the configured log level; Validate has already checked it.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}

	return lvl
}

// OutputFormat returns the configured output format.
func (c *Config) OutputFormat() dataio.Format {
	f, err := dataio.ParseFormat(c.Output)
	if err != nil {
		return dataio.JSON
	}

	return f
}

// Formatter builds a date formatter for the configured locale. Later options
// override it.
func (c *Config) Formatter(opts ...date.Option) *date.Formatter {
	loc, err := date.ParseLocale(c.Locale)
	if err != nil {
		loc = date.SimplifiedChinese
	}

	return date.New(append([]date.Option{date.WithLocale(loc)}, opts...)...)
}

// TreeOptions converts the tree section for collection.ArrayToTree.
func (c *Config) TreeOptions() *collection.TreeOptions {
	return &collection.TreeOptions{
		IDField:       c.Tree.IDField,
		ParentIDField: c.Tree.ParentIDField,
		ChildrenField: c.Tree.ChildrenField,
		RootValue:     c.Tree.Root,
	}
}
