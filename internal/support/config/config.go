// Package config resolves enumerator settings (cache directory, worker
// count, default compression) from a priority-ordered list of sources:
// an optional config file, environment variables, then built-in defaults.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the settings the orchestrator and CLI need.
type Config struct {
	CacheDir           string `yaml:"cache_dir"`
	Workers            int    `yaml:"workers"`
	DefaultCompression string `yaml:"default_compression"`
	ParallelismEnabled bool   `yaml:"parallelism_enabled"`
}

// Source represents a configuration source; higher Priority wins on conflict.
type Source interface {
	Load() (*Config, error)
	Priority() int
	Name() string
}

// FileSource loads configuration from a YAML file.
type FileSource struct {
	Path     string
	priority int
}

// NewFileSource builds a FileSource at the given priority.
func NewFileSource(path string, priority int) *FileSource {
	return &FileSource{Path: path, priority: priority}
}

func (fs *FileSource) Load() (*Config, error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

func (fs *FileSource) Priority() int { return fs.priority }
func (fs *FileSource) Name() string  { return fmt.Sprintf("file:%s", fs.Path) }

// EnvSource loads configuration from OPENCUBES_* environment variables.
type EnvSource struct {
	Prefix   string
	priority int
}

// NewEnvSource builds an EnvSource at the given priority.
func NewEnvSource(prefix string, priority int) *EnvSource {
	return &EnvSource{Prefix: prefix, priority: priority}
}

func (es *EnvSource) Load() (*Config, error) {
	cfg := &Config{}
	cfg.CacheDir = os.Getenv(es.Prefix + "CACHE_DIR")
	cfg.DefaultCompression = strings.ToLower(os.Getenv(es.Prefix + "COMPRESSION"))

	if v := os.Getenv(es.Prefix + "WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	if v := os.Getenv(es.Prefix + "PARALLEL"); v != "" {
		cfg.ParallelismEnabled = parseBool(v, true)
	} else {
		cfg.ParallelismEnabled = true
	}

	return cfg, nil
}

func (es *EnvSource) Priority() int { return es.priority }
func (es *EnvSource) Name() string  { return fmt.Sprintf("environment:%s", es.Prefix) }

// DefaultSource supplies built-in defaults.
type DefaultSource struct {
	priority int
}

// NewDefaultSource builds a DefaultSource at the given priority.
func NewDefaultSource(priority int) *DefaultSource { return &DefaultSource{priority: priority} }

func (ds *DefaultSource) Load() (*Config, error) {
	return &Config{
		CacheDir:           ".",
		Workers:            runtime.NumCPU(),
		DefaultCompression: "none",
		ParallelismEnabled: true,
	}, nil
}

func (ds *DefaultSource) Priority() int { return ds.priority }
func (ds *DefaultSource) Name() string  { return "default" }

func parseBool(v string, fallback bool) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return fallback
	}
}

// Loader merges a set of Sources by priority (highest wins per non-empty
// string or non-zero int field; ParallelismEnabled always takes the
// highest-priority source's value, even false), matching the teacher's
// ConfigLoader shape.
type Loader struct {
	sources []Source
}

// NewLoader returns an empty Loader.
func NewLoader() *Loader { return &Loader{} }

// AddSource registers a configuration source.
func (l *Loader) AddSource(s Source) { l.sources = append(l.sources, s) }

// Load resolves the final Config by applying sources lowest-priority first,
// so a higher-priority source's set fields win (see merge).
func (l *Loader) Load() (*Config, error) {
	sorted := append([]Source(nil), l.sources...)
	for i := 0; i < len(sorted)-1; i++ {
		for j := 0; j < len(sorted)-i-1; j++ {
			if sorted[j].Priority() > sorted[j+1].Priority() {
				sorted[j], sorted[j+1] = sorted[j+1], sorted[j]
			}
		}
	}

	cfg := &Config{}
	for _, src := range sorted {
		next, err := src.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load from source %s: %w", src.Name(), err)
		}
		cfg = merge(cfg, next)
	}
	return cfg, nil
}

func merge(base, override *Config) *Config {
	merged := *base
	if override.CacheDir != "" {
		merged.CacheDir = override.CacheDir
	}
	if override.Workers != 0 {
		merged.Workers = override.Workers
	}
	if override.DefaultCompression != "" {
		merged.DefaultCompression = override.DefaultCompression
	}
	merged.ParallelismEnabled = override.ParallelismEnabled
	return &merged
}

// Resolve loads the default config (working-directory opencubes.yaml if
// present, then environment, then built-ins).
func Resolve() (*Config, error) {
	l := NewLoader()
	l.AddSource(NewDefaultSource(0))
	l.AddSource(NewEnvSource("OPENCUBES_", 50))
	if _, err := os.Stat("opencubes.yaml"); err == nil {
		l.AddSource(NewFileSource("opencubes.yaml", 100))
	}
	return l.Load()
}
