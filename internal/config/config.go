package config

import (
	stderrors "errors"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vango-dev/tiny/internal/errors"
)

const (
	// ConfigName is the base name of the configuration file.
	ConfigName = "tiny"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "TINY"

	// DefaultIDAttribute is the attribute carrying identifiers.
	DefaultIDAttribute = "data-reactid"

	// DefaultLogLevel is the default slog level name.
	DefaultLogLevel = "info"

	// DefaultNamespace is the default metrics namespace.
	DefaultNamespace = "tiny"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "tiny"

	// DefaultDebounce is the default delay between a file change and the
	// re-render in watch mode.
	DefaultDebounce = 100 * time.Millisecond
)

// Config is the complete tiny configuration.
type Config struct {
	// IDAttribute is the attribute written on every mounted element.
	IDAttribute string `mapstructure:"id_attribute"`

	// RootIndex is the index of the first root identifier.
	RootIndex int `mapstructure:"root_index"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// Metrics configures Prometheus collectors.
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Tracing configures OpenTelemetry spans.
	Tracing TracingConfig `mapstructure:"tracing"`

	// Watch configures `tiny watch`.
	Watch WatchConfig `mapstructure:"watch"`

	configPath string
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	TracerName string `mapstructure:"tracer_name"`
}

// WatchConfig contains file watching settings.
type WatchConfig struct {
	// Debounce coalesces bursts of write events.
	Debounce time.Duration `mapstructure:"debounce"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		IDAttribute: DefaultIDAttribute,
		LogLevel:    DefaultLogLevel,
		Metrics: MetricsConfig{
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Watch: WatchConfig{
			Debounce: DefaultDebounce,
		},
	}
}

// setDefaults registers every key so environment overrides apply even
// without a file.
func setDefaults(v *viper.Viper) {
	d := New()
	v.SetDefault("id_attribute", d.IDAttribute)
	v.SetDefault("root_index", d.RootIndex)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.tracer_name", d.Tracing.TracerName)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
}

// Load reads configuration. An empty path searches the working directory
// for tiny.yaml, tiny.yml or tiny.json and falls back to defaults when none
// exists; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !stderrors.As(err, &notFound) {
			return nil, errors.New("E203").
				WithDetail("Failed to read configuration: " + err.Error()).
				Wrap(err)
		}
	}

	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E203").
			WithDetail("Failed to decode configuration: " + err.Error()).
			Wrap(err)
	}
	cfg.configPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.configPath
}

var attrPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !attrPattern.MatchString(c.IDAttribute) {
		return errors.New("E203").
			WithDetailf("id_attribute %q is not a valid attribute name", c.IDAttribute).
			WithSuggestion("Use lower-case letters, digits and dashes, e.g. data-reactid")
	}
	if c.RootIndex < 0 {
		return errors.New("E203").
			WithDetailf("root_index must not be negative, got %d", c.RootIndex)
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		return errors.New("E203").
			WithDetailf("log_level %q is not one of debug, info, warn, error", c.LogLevel)
	}
	if c.Watch.Debounce < 0 {
		return errors.New("E203").
			WithDetailf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// SlogLevel returns the parsed log level, info when unknown.
func (c *Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.SlogLevel()}))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
