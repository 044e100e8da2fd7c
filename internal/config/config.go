package config

import "github.com/spf13/pflag"

// Config is the resolved configuration for one run.
type Config struct {
	Dir         string
	Glob        string
	Delete      bool
	Output      string // "text", "yaml"
	MetricsFile string
	Logging     LoggingConfig
}

type LoggingConfig struct {
	Level  string // "info", "debug", etc.
	Format string // "console", "json"
}

const (
	DefaultDir  = "/backup"
	DefaultGlob = "*.sql.gz"
)

// RegisterFlags declares the command-line surface on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.Bool("delete", false, "actually delete files (default is a dry run)")
	fs.String("dir", DefaultDir, "backup directory; $(VAR) placeholders are expanded")
	fs.String("glob", DefaultGlob, "shell pattern selecting backup files")
	fs.String("output", "text", "report format: text or yaml")
	fs.String("metrics-file", "", "write Prometheus textfile metrics to this path")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-format", "console", "log format: console or json")
}
