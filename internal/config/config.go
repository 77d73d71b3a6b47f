package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nais/jaws-deploy/internal/jaws"
	flag "github.com/spf13/pflag"
)

const (
	EnvAPIURL       = "JAWS_API_URL"
	EnvPollInterval = "JAWS_POLL_INTERVAL"
	EnvPollTimeout  = "JAWS_POLL_TIMEOUT"
	EnvMetricsFile  = "JAWS_METRICS_FILE"
	EnvLogFormat    = "LOG_FORMAT"
	EnvLogLevel     = "LOG_LEVEL"
)

var outputFormats = []string{"none", "json", "yaml"}

type Logger struct {
	Format string
	Level  string
}

type API struct {
	URL      string
	Login    string
	Password string
}

type Poll struct {
	Interval time.Duration
	Timeout  time.Duration
	SkipLogs bool
	NoWait   bool
}

type Config struct {
	API         API
	Logger      Logger
	Poll        Poll
	Output      string
	MetricsFile string
}

// LookupEnv has the signature of os.LookupEnv
type LookupEnv func(key string) (string, bool)

// New registers the flags shared by all commands on fs, parses args and fills in anything not given
// on the command line from the environment. Credentials given as flags win over the environment.
func New(fs *flag.FlagSet, args []string, lookupEnv LookupEnv) (*Config, error) {
	cfg := &Config{}
	env := environment(lookupEnv)

	interval, err := env.duration(EnvPollInterval, 3*time.Second)
	if err != nil {
		return nil, err
	}
	timeout, err := env.duration(EnvPollTimeout, 0)
	if err != nil {
		return nil, err
	}

	fs.StringVar(&cfg.API.URL, "api-url", env.orDefault(EnvAPIURL, jaws.DefaultBaseURL), "Jaws Deploy API base URL")
	fs.StringVar(&cfg.API.Login, "login", "", "API login, defaults to $"+jaws.EnvLogin)
	fs.StringVar(&cfg.API.Password, "password", "", "API password, defaults to $"+jaws.EnvPassword)
	fs.DurationVar(&cfg.Poll.Interval, "poll-interval", interval, "delay between deployment status requests")
	fs.DurationVar(&cfg.Poll.Timeout, "timeout", timeout, "give up waiting for a deployment after this long, 0 waits forever")
	fs.BoolVar(&cfg.Poll.SkipLogs, "skip-logs", false, "do not fetch or print deployment logs")
	fs.BoolVar(&cfg.Poll.NoWait, "no-wait", false, "do not wait for deployments to finish")
	fs.StringVar(&cfg.Output, "output", "none", "print the result as one of: "+strings.Join(outputFormats, ", "))
	fs.StringVar(&cfg.MetricsFile, "metrics-file", env.orDefault(EnvMetricsFile, ""), "write metrics in the prometheus text format to this file on exit")
	fs.StringVar(&cfg.Logger.Format, "log-format", env.orDefault(EnvLogFormat, "text"), "which log format to use")
	fs.StringVar(&cfg.Logger.Level, "log-level", env.orDefault(EnvLogLevel, "info"), "which log level to output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.API.Login == "" {
		cfg.API.Login = env.orDefault(jaws.EnvLogin, "")
	}
	if cfg.API.Password == "" {
		cfg.API.Password = env.orDefault(jaws.EnvPassword, "")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// JawsConfig returns the client configuration.
func (c *Config) JawsConfig() jaws.Config {
	return jaws.Config{
		BaseURL:  c.API.URL,
		Login:    c.API.Login,
		Password: c.API.Password,
	}
}

func (c *Config) validate() error {
	if c.API.Login == "" {
		return &jaws.ConfigurationError{Field: "login", EnvVar: jaws.EnvLogin}
	}
	if c.API.Password == "" {
		return &jaws.ConfigurationError{Field: "password", EnvVar: jaws.EnvPassword}
	}
	if c.Poll.Interval <= 0 {
		return &jaws.ConfigurationError{Field: "poll-interval", Err: fmt.Errorf("must be positive, got %v", c.Poll.Interval)}
	}
	if c.Poll.Timeout < 0 {
		return &jaws.ConfigurationError{Field: "timeout", Err: fmt.Errorf("must not be negative, got %v", c.Poll.Timeout)}
	}

	for _, f := range outputFormats {
		if c.Output == f {
			return nil
		}
	}
	return &jaws.ConfigurationError{Field: "output", Err: fmt.Errorf("unknown format %q", c.Output)}
}

type environment LookupEnv

func (e environment) orDefault(key, fallback string) string {
	if value, ok := e(key); ok && value != "" {
		return value
	}
	return fallback
}

func (e environment) duration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := e(key)
	if !ok || value == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, &jaws.ConfigurationError{Field: key, EnvVar: key, Err: err}
	}
	return d, nil
}
