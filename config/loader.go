package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// Resolver handles finding settings and env files.
type Resolver struct {
	FileSystem FileSystem
}

// ResolvedFiles contains the resolved settings and env file paths.
type ResolvedFiles struct {
	ConfigFile string
	EnvFile    string
}

// ResolveFiles finds settings and env files for a service.
// Returns explicit paths if provided, otherwise searches for them.
func (r *Resolver) ResolveFiles(serviceName string, opts LoaderConfig) ResolvedFiles {
	resolved := ResolvedFiles{
		ConfigFile: opts.ConfigFile,
		EnvFile:    opts.EnvFile,
	}
	if resolved.ConfigFile == "" {
		resolved.ConfigFile = r.find(configCandidates(serviceName))
	}
	if resolved.EnvFile == "" {
		resolved.EnvFile = r.find(envCandidates(serviceName))
	}
	return resolved
}

func (r *Resolver) find(paths []string) string {
	for _, path := range paths {
		if r.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}

func configCandidates(serviceName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/config.yml", serviceName),
		fmt.Sprintf("./config/%s.yml", serviceName),
		"./config/config.yml",
		"./config.yml",
	}
}

func envCandidates(serviceName string) []string {
	return []string{
		fmt.Sprintf("./cmd/%s/.env", serviceName),
		fmt.Sprintf("./.env.%s", serviceName),
		"./.env",
	}
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct settings file path (optional)
	EnvFile    string // Direct env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit settings file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// settingsKeys are bound to environment variables explicitly so that
// Unmarshal sees them even when the settings file does not declare them.
var settingsKeys = []string{
	"name",
	"environment",
	"mappings",
	"env_files",
	"logging.level",
	"logging.format",
	"logging.output",
	"logging.no_color",
	"logging.caller",
}

// Load reads settings for a service. It returns the parsed settings along
// with the Viper instance they came from, so that configuration keys can
// be exposed to the container through a resolver.
func Load(serviceName string, opts ...LoaderOption) (*Settings, *viper.Viper, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	resolver := &Resolver{FileSystem: lc.FileSystem}
	files := resolver.ResolveFiles(serviceName, lc)

	v, err := newViper(serviceName, files, lc.FileSystem)
	if err != nil {
		return nil, nil, err
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal settings for service %s: %w", serviceName, err)
	}
	settings.ApplyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	if files.ConfigFile != "" {
		base := filepath.Dir(files.ConfigFile)
		settings.Mappings = relativeTo(base, settings.Mappings)
		for i, f := range settings.EnvFiles {
			settings.EnvFiles[i] = relativeTo(base, f)
		}
	}
	return settings, v, nil
}

func newViper(serviceName string, files ResolvedFiles, fs FileSystem) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("name", serviceName)

	if files.ConfigFile != "" {
		if !fs.Exists(files.ConfigFile) {
			return nil, fmt.Errorf("settings file %s not found", files.ConfigFile)
		}
		v.SetConfigFile(files.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", files.ConfigFile, err)
		}
	}

	if files.EnvFile != "" && fs.Exists(files.EnvFile) {
		if err := fs.LoadEnv(files.EnvFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", files.EnvFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix(serviceName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range settingsKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return v, nil
}

// EnvPrefix returns the environment variable prefix for a service name.
func EnvPrefix(serviceName string) string {
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(serviceName))
}

func relativeTo(base, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
