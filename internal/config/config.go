// Package config resolves the server settings: defaults, then an optional
// YAML file, then FOCUSPAD_HOST / FOCUSPAD_PORT.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvHost = "FOCUSPAD_HOST"
	EnvPort = "FOCUSPAD_PORT"
)

// DefaultOriginPattern accepts localhost and 127.0.0.1 over http or https on any port.
const DefaultOriginPattern = `^https?://(localhost|127\.0\.0\.1)(:\d+)?$`

const (
	TracingNone   = "none"
	TracingStdout = "stdout"
)

type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
	Tracing TracingConfig `yaml:"tracing"`
}

type HTTPConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // auto | text | json
}

type CORSConfig struct {
	OriginPattern string `yaml:"origin_pattern"`
}

type TracingConfig struct {
	Exporter    string `yaml:"exporter"` // none | stdout
	ServiceName string `yaml:"service_name"`
}

func New() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            "127.0.0.1",
			Port:            8000,
			ShutdownTimeout: time.Second * 10,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "auto",
		},
		CORS: CORSConfig{
			OriginPattern: DefaultOriginPattern,
		},
		Tracing: TracingConfig{
			Exporter:    TracingNone,
			ServiceName: "focuspad",
		},
	}
}

// Load returns the defaults overlaid with the YAML file at path (skipped when
// path is empty) and then the environment.
func Load(path string) (Config, error) {
	cfg := New()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config: %w", err)
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

func (c *Config) applyEnv() error {
	if host, ok := os.LookupEnv(EnvHost); ok && host != "" {
		c.HTTP.Host = host
	}
	if raw, ok := os.LookupEnv(EnvPort); ok && raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPort, err)
		}
		c.HTTP.Port = port
	}
	return nil
}

func (c Config) Validate() error {
	var errs []error

	if c.HTTP.Port < 1 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port %d out of range 1-65535", c.HTTP.Port))
	}
	if c.HTTP.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("http.shutdown_timeout must be positive"))
	}
	if _, err := c.OriginPattern(); err != nil {
		errs = append(errs, err)
	}
	switch c.Tracing.Exporter {
	case TracingNone, TracingStdout:
	default:
		errs = append(errs, fmt.Errorf("tracing.exporter %q: want %q or %q", c.Tracing.Exporter, TracingNone, TracingStdout))
	}

	return errors.Join(errs...)
}

// Addr is the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

func (c Config) OriginPattern() (*regexp.Regexp, error) {
	re, err := regexp.Compile(c.CORS.OriginPattern)
	if err != nil {
		return nil, fmt.Errorf("cors.origin_pattern: %w", err)
	}
	return re, nil
}
