package main

import (
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/closestpair"
)

// Config is the YAML configuration file layout.
type Config struct {
	Format string      `yaml:"format"`
	Store  StoreConfig `yaml:"store"`
	Limits Limits      `yaml:"limits"`
	Log    LogConfig   `yaml:"log"`
}

// StoreConfig selects and configures the blob store holding point sets.
type StoreConfig struct {
	// Type is one of local, s3 or minio.
	Type string `yaml:"type"`
	// Path is the root directory of a local store.
	Path string `yaml:"path"`

	Bucket    string `yaml:"bucket"`
	Prefix    string `yaml:"prefix"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

// Limits bounds batch runs.
type Limits struct {
	Workers int64 `yaml:"workers"`
	// MemoryLimit caps point-buffer bytes held at once. 0 disables the cap.
	MemoryLimit int64 `yaml:"memory_limit"`
	// IOLimit caps input bytes read per second. 0 disables the cap.
	IOLimit int64 `yaml:"io_limit"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

func defaultConfig() Config {
	return Config{
		Format: "auto",
		Store:  StoreConfig{Type: "local", Path: "."},
		Limits: Limits{Workers: int64(runtime.NumCPU())},
		Log:    LogConfig{Level: "error"},
	}
}

// loadConfig reads path over the defaults. An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseStoreURL turns a --store value into a StoreConfig.
//
//	s3://bucket/prefix
//	minio://host:port/bucket/prefix
//	file:///dir or a plain directory path
func parseStoreURL(raw string, base StoreConfig) (StoreConfig, error) {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain paths, including Windows drive letters.
		return StoreConfig{Type: "local", Path: raw}, nil
	}

	sc := base
	switch u.Scheme {
	case "file":
		return StoreConfig{Type: "local", Path: u.Path}, nil
	case "s3":
		sc.Type = "s3"
		sc.Bucket = u.Host
		sc.Prefix = strings.TrimPrefix(u.Path, "/")
	case "minio":
		sc.Type = "minio"
		sc.Endpoint = u.Host
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if bucket == "" {
			return sc, fmt.Errorf("store %q: missing bucket", raw)
		}
		sc.Bucket = bucket
		sc.Prefix = prefix
	default:
		return sc, fmt.Errorf("store %q: unsupported scheme %q", raw, u.Scheme)
	}
	if sc.Bucket == "" {
		return sc, fmt.Errorf("store %q: missing bucket", raw)
	}
	return sc, nil
}

// newLogger builds the CLI logger writing to w.
func newLogger(cfg LogConfig, w io.Writer) (*closestpair.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	if cfg.JSON {
		return closestpair.NewJSONLogger(w, level), nil
	}
	return closestpair.NewTextLogger(w, level), nil
}
