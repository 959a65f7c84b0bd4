package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultDotenv is the .env file read from the working directory.
const DefaultDotenv = ".env"

// Load reads the configuration at path and applies environment overrides.
// Real environment variables take precedence over the .env file.
func Load(path string, opts ...Option) (*Config, error) {
	o := options{dotenv: DefaultDotenv}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigMissing, path, err)
	}

	cfg := defaults()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigMalformed, path, err)
	}

	environ, err := o.environ()
	if err != nil {
		return nil, err
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, errors.Join(ErrConfigMalformed, err)
	}

	return &cfg, nil
}

// environ merges the .env file under the process (or injected) environment.
func (o options) environ() (map[string]string, error) {
	base := o.environment
	if base == nil {
		base = env.ToMap(os.Environ())
	}
	if o.dotenv == "" {
		return base, nil
	}

	dotenv, err := godotenv.Read(o.dotenv)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigMalformed, o.dotenv, err)
	}

	merged := make(map[string]string, len(dotenv)+len(base))
	maps.Copy(merged, dotenv)
	maps.Copy(merged, base)
	return merged, nil
}

// ResolvePath locates a configuration file. Absolute paths and files present
// relative to the working directory are returned as is. Otherwise the file is
// looked up next to the running executable; if it is not there either, name is
// returned unchanged so that Load reports it.
func ResolvePath(name string) string {
	if filepath.IsAbs(name) || exists(name) {
		return name
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	if candidate := filepath.Join(filepath.Dir(exe), name); exists(candidate) {
		return candidate
	}
	return name
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
