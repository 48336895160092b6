package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvAPIBaseURL      = "PUBLIC_API_URL"
	EnvHTTPAddr        = "STATUSVIEW_HTTP_ADDR"
	EnvRequestTimeout  = "STATUSVIEW_REQUEST_TIMEOUT"
	EnvShutdownTimeout = "STATUSVIEW_SHUTDOWN_TIMEOUT"
	EnvLogLevel        = "STATUSVIEW_LOG_LEVEL"
	EnvLogFile         = "STATUSVIEW_LOG_FILE"
)

type Config struct {
	HTTPAddr        string        `yaml:"http_addr"`
	APIBaseURL      string        `yaml:"api_base_url"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	LogLevel        string        `yaml:"log_level"`
	LogFile         string        `yaml:"log_file"`
	Workers         int           `yaml:"workers"`
}

func New() Config {
	return Config{
		HTTPAddr:        ":8080",
		APIBaseURL:      "http://localhost:8000",
		RequestTimeout:  time.Second * 10,
		ShutdownTimeout: time.Second * 10,
		LogLevel:        "info",
		Workers:         5,
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order. envFile, when set, is loaded into the process
// environment first; a missing .env or config file is not an error.
func Load(path, envFile string) (Config, error) {
	cfg := New()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	return nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvAPIBaseURL); ok {
		c.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvHTTPAddr); ok {
		c.HTTPAddr = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok {
		c.LogFile = v
	}

	for name, dst := range map[string]*time.Duration{
		EnvRequestTimeout:  &c.RequestTimeout,
		EnvShutdownTimeout: &c.ShutdownTimeout,
	} {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		*dst = d
	}

	return nil
}

func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("http_addr", c.HTTPAddr, notEmpty),
		criterio.Run("api_base_url", c.APIBaseURL, absoluteURL),
		criterio.Run("log_level", c.LogLevel, logLevel),
		c.validateLimits(),
	)
}

func (c *Config) validateLimits() error {
	var errs criterio.FieldErrorsBuilder

	if err := positive(c.RequestTimeout); err != nil {
		errs = errs.Append("request_timeout", err)
	}
	if err := positive(c.ShutdownTimeout); err != nil {
		errs = errs.Append("shutdown_timeout", err)
	}
	if c.Workers < 1 {
		errs = errs.Append("workers", fmt.Errorf("must be at least 1, got %d", c.Workers))
	}

	return errs.ToError()
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("is required")
	}
	return nil
}

func absoluteURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("host is required")
	}
	return nil
}

func positive(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %s", d)
	}
	return nil
}

func logLevel(s string) error {
	switch s {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic":
		return nil
	}
	return fmt.Errorf("unknown level %q", s)
}
