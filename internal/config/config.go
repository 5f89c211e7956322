// Package config loads debug-generator settings from defaults, an optional
// YAML file, DEBUGGEN_* environment variables, and command-line flags, in
// increasing order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"debug-generator/internal/attr"
	"debug-generator/internal/common"
	"debug-generator/internal/gen"
	"debug-generator/internal/plan"
)

// FileName is the project config file looked up from the working directory
// upwards.
const FileName = ".debug-generator.yaml"

// EnvPrefix prefixes environment overrides, e.g. DEBUGGEN_ALLOW_TAGS=json,yaml.
const EnvPrefix = "DEBUGGEN"

// Config holds the generator settings.
type Config struct {
	Types         []string `mapstructure:"types"`
	Output        string   `mapstructure:"output"`
	AllowTags     []string `mapstructure:"allow_tags"`
	RuntimeImport string   `mapstructure:"runtime_import"`
	RuntimeAlias  string   `mapstructure:"runtime_alias"`
	BuildTags     []string `mapstructure:"build_tags"`
	Verbose       int      `mapstructure:"verbose"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"type":           "types",
	"output":         "output",
	"allow-tag":      "allow_tags",
	"runtime-import": "runtime_import",
	"runtime-alias":  "runtime_alias",
	"tags":           "build_tags",
	"verbose":        "verbose",
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("types", []string{})
	v.SetDefault("output", "")
	v.SetDefault("allow_tags", []string{})
	v.SetDefault("runtime_import", gen.DefaultRuntimeImport)
	v.SetDefault("runtime_alias", "")
	v.SetDefault("build_tags", []string{})
	v.SetDefault("verbose", 0)
}

// Load builds the configuration. configFile may be empty, in which case
// FileName is searched from dir upwards. flags may be nil.
func Load(dir, configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configFile == "" {
		configFile = FindProjectConfig(dir)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.Types = common.SplitList(cfg.Types...)
	cfg.AllowTags = common.SplitList(cfg.AllowTags...)
	cfg.BuildTags = common.SplitList(cfg.BuildTags...)

	return &cfg, nil
}

// bindFlags binds only the flags the user actually set, so that unset flags
// do not mask file and environment values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}

		err = v.BindPFlag(key, f)
	})

	return errors.Wrap(err, "failed to bind flags")
}

// FindProjectConfig searches for FileName by walking up from dir. It returns
// an empty string if none is found.
func FindProjectConfig(dir string) string {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ""
		}
		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		p := filepath.Join(dir, FileName)
		if _, err := os.Stat(p); err == nil {
			return p
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// PlanOptions returns the planning options derived from the config.
func (c *Config) PlanOptions() plan.Options {
	return plan.Options{Attr: attr.Options{AllowTags: c.AllowTags}}
}

// GeneratorConfig returns the code generation settings derived from the
// config. outputDir is the directory generated files are written to.
func (c *Config) GeneratorConfig(outputDir string) gen.GeneratorConfig {
	return gen.GeneratorConfig{
		RuntimeImport: c.RuntimeImport,
		RuntimeAlias:  c.RuntimeAlias,
		OutputDir:     outputDir,
	}
}
