// Package config loads the settings of the onestroke command from an
// optional YAML file and ONESTROKE_* environment variables. Difficulty
// tiers are not part of it; they live in their own HCL file (tiers.file).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// ONESTROKE_GENERATOR_MAX_ATTEMPTS.
const EnvPrefix = "ONESTROKE"

// Config holds all application configuration.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Tiers     TiersConfig     `mapstructure:"tiers"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Repair    RepairConfig    `mapstructure:"repair"`
	Geometry  GeometryConfig  `mapstructure:"geometry"`
	Log       LogConfig       `mapstructure:"log"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
}

type CatalogConfig struct {
	Path      string `mapstructure:"path"`
	BadgerDir string `mapstructure:"badger_dir"`
}

// TiersConfig points at an HCL tier table; empty uses the built-in one.
type TiersConfig struct {
	File string `mapstructure:"file"`
}

type GeneratorConfig struct {
	Seed          int64 `mapstructure:"seed"`
	MaxAttempts   int   `mapstructure:"max_attempts"`
	SafeAttempts  int   `mapstructure:"safe_attempts"`
	EulerFixLimit int   `mapstructure:"euler_fix_limit"`
	StepLimit     int   `mapstructure:"step_limit"` // 0 = unlimited
}

type RepairConfig struct {
	MaxRegenerations int  `mapstructure:"max_regenerations"`
	SafeRetries      int  `mapstructure:"safe_retries"`
	SafeFallback     bool `mapstructure:"safe_fallback"`
	LocalFix         bool `mapstructure:"local_fix"`
}

type GeometryConfig struct {
	Epsilon      float64 `mapstructure:"epsilon"`
	Collinearity float64 `mapstructure:"collinearity"`
	Slack        float64 `mapstructure:"slack"`
	MinDistance  float64 `mapstructure:"min_distance"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TracingConfig struct {
	Endpoint    string  `mapstructure:"endpoint"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRate  float64 `mapstructure:"sample_rate"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog.path", "levels.json")
	v.SetDefault("catalog.badger_dir", "levels.badger")
	v.SetDefault("tiers.file", "")

	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.max_attempts", 50)
	v.SetDefault("generator.safe_attempts", 200)
	v.SetDefault("generator.euler_fix_limit", 100)
	v.SetDefault("generator.step_limit", 0)

	v.SetDefault("repair.max_regenerations", 100)
	v.SetDefault("repair.safe_retries", 10)
	v.SetDefault("repair.safe_fallback", true)
	v.SetDefault("repair.local_fix", true)

	v.SetDefault("geometry.epsilon", 0.01)
	v.SetDefault("geometry.collinearity", 0.05)
	v.SetDefault("geometry.slack", 0.1)
	v.SetDefault("geometry.min_distance", 0.4)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "onestroke")
	v.SetDefault("tracing.sample_rate", 1.0)
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: defaults: %v", err))
	}
	return cfg
}

// Load reads configuration from path (skipped when empty) and the
// environment. Environment variables win over the file, the file over the
// defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	return &cfg, nil
}

// Validate checks configuration for issues and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	budgets := []struct {
		key string
		val int
	}{
		{"generator.max_attempts", c.Generator.MaxAttempts},
		{"generator.safe_attempts", c.Generator.SafeAttempts},
		{"generator.euler_fix_limit", c.Generator.EulerFixLimit},
		{"repair.max_regenerations", c.Repair.MaxRegenerations},
		{"repair.safe_retries", c.Repair.SafeRetries},
	}
	for _, b := range budgets {
		if b.val <= 0 {
			warnings = append(warnings, fmt.Sprintf("%s=%d must be > 0; the default is used", b.key, b.val))
		}
	}
	if c.Generator.StepLimit < 0 {
		warnings = append(warnings, fmt.Sprintf("generator.step_limit=%d is negative; treated as unlimited", c.Generator.StepLimit))
	}

	g := c.Geometry
	if g.Epsilon < 0 || g.Collinearity < 0 || g.Slack < 0 || g.MinDistance < 0 {
		warnings = append(warnings, fmt.Sprintf("geometry thresholds must be >= 0 (epsilon=%g collinearity=%g slack=%g min_distance=%g)",
			g.Epsilon, g.Collinearity, g.Slack, g.MinDistance))
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("log.level %q is unknown; using info", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		warnings = append(warnings, fmt.Sprintf("log.format %q is unknown; using text", c.Log.Format))
	}

	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		warnings = append(warnings, fmt.Sprintf("tracing.sample_rate %.2f is outside [0, 1]", c.Tracing.SampleRate))
	}
	if c.Catalog.Path == "" {
		warnings = append(warnings, "catalog.path is empty")
	}
	return warnings
}
