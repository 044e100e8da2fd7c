package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. DUMP_PRUNER_DIR.
const EnvPrefix = "DUMP_PRUNER"

// matches $(VAR_NAME)
var envPattern = regexp.MustCompile(`\$\(([A-Za-z0-9_]+)\)`)

// replaces $(VAR) with os.Getenv(VAR)
func expandEnvVars(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := mapEnvKey(envPattern.FindStringSubmatch(m)[1])
		return os.Getenv(key)
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dir", DefaultDir)
	v.SetDefault("glob", DefaultGlob)
	v.SetDefault("output", "text")
	v.SetDefault("metrics-file", "")
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "console")
}

// Load resolves configuration from flags, then DUMP_PRUNER_* variables, then defaults.
// The delete switch is taken from the flag set alone.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	cfg := &Config{
		Dir:         expandEnvVars(v.GetString("dir")),
		Glob:        expandEnvVars(v.GetString("glob")),
		Output:      strings.ToLower(v.GetString("output")),
		MetricsFile: v.GetString("metrics-file"),
		Logging: LoggingConfig{
			Level:  v.GetString("log-level"),
			Format: v.GetString("log-format"),
		},
	}

	if f := flags.Lookup("delete"); f != nil {
		del, err := flags.GetBool("delete")
		if err != nil {
			return nil, fmt.Errorf("reading delete flag: %w", err)
		}
		cfg.Delete = del
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings that would make the run meaningless.
func (c *Config) Validate() error {
	var errs []error
	if c.Dir == "" {
		errs = append(errs, errors.New("dir must not be empty"))
	}
	if c.Glob == "" {
		errs = append(errs, errors.New("glob must not be empty"))
	} else if _, err := filepath.Match(c.Glob, ""); err != nil {
		errs = append(errs, fmt.Errorf("glob %q: %w", c.Glob, err))
	}
	switch c.Output {
	case "text", "yaml":
	default:
		errs = append(errs, fmt.Errorf("unknown output %q (want text or yaml)", c.Output))
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q (want console or json)", c.Logging.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
