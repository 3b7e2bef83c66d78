// Package config holds the directory layout and runtime settings of the
// application. Values come from the environment (optionally seeded from a
// .env file next to the binary) and default to the layout the catalog has
// always used: data/, logs/, manuales_productos/ and imagenes_productos/
// under one base directory.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// File names inside DataDir and LogsDir. The JSON documents must keep these
// names so existing deployments can migrate their data files as-is.
const (
	UsersFileName       = "users.json"
	ProductsFileName    = "products.json"
	ActivityLogFileName = "registro_actividad_balanzas.csv"
)

// Config describes where the application keeps its files and how chatty the
// diagnostic log is. Relative directories are resolved against BaseDir.
type Config struct {
	BaseDir    string `env:"BALANZAS_BASE_DIR, default=."`
	DataDir    string `env:"BALANZAS_DATA_DIR, default=data"`
	LogsDir    string `env:"BALANZAS_LOGS_DIR, default=logs"`
	ManualsDir string `env:"BALANZAS_MANUALS_DIR, default=manuales_productos"`
	ImagesDir  string `env:"BALANZAS_IMAGES_DIR, default=imagenes_productos"`
	LogLevel   string `env:"BALANZAS_LOG_LEVEL, default=info"`
	LogPretty  bool   `env:"BALANZAS_LOG_PRETTY, default=true"`
}

// Load reads configuration from the environment. A missing .env file is
// fine; a present but unreadable one is not.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}

// resolve joins dir with BaseDir unless dir is already absolute.
func (c *Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.BaseDir, dir)
}

// DataPath returns the directory holding the JSON documents.
func (c *Config) DataPath() string { return c.resolve(c.DataDir) }

// LogsPath returns the directory holding the activity log.
func (c *Config) LogsPath() string { return c.resolve(c.LogsDir) }

// ManualsPath returns the directory product manual files are resolved
// against when a manual reference is not a web URL.
func (c *Config) ManualsPath() string { return c.resolve(c.ManualsDir) }

// ImagesPath returns the directory holding product images.
func (c *Config) ImagesPath() string { return c.resolve(c.ImagesDir) }

// UsersFile returns the full path of the users JSON document.
func (c *Config) UsersFile() string {
	return filepath.Join(c.DataPath(), UsersFileName)
}

// ProductsFile returns the full path of the products JSON document.
func (c *Config) ProductsFile() string {
	return filepath.Join(c.DataPath(), ProductsFileName)
}

// ActivityLogFile returns the full path of the activity log document.
func (c *Config) ActivityLogFile() string {
	return filepath.Join(c.LogsPath(), ActivityLogFileName)
}
