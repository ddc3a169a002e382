package app

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "HEIZLAST_"

type Config struct {
	Controllers struct {
		HTTP HTTPConfig `koanf:"http"`
	} `koanf:"controllers"`

	Data    DataConfig    `koanf:"data"`
	Catalog CatalogConfig `koanf:"catalog"`
	Log     LogConfig     `koanf:"log"`
}

type HTTPConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// DataConfig locates the building JSON file. Dir is scanned for an
// existing file on startup and receives the file on save.
type DataConfig struct {
	Dir string `koanf:"dir"`
}

// CatalogConfig points at an optional YAML seed with construction and
// temperature entries merged into the building on startup.
type CatalogConfig struct {
	SeedPath string `koanf:"seed_path"`
}

type LogConfig struct {
	Level  string `koanf:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `koanf:"format"` // "text" | "json"
}

func defaultConfig() Config {
	var cfg Config
	cfg.Controllers.HTTP.Enabled = true
	cfg.Controllers.HTTP.Addr = ":8080"
	cfg.Data.Dir = "."
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	return cfg
}

// LoadConfig layers defaults, an optional config file and HEIZLAST_*
// environment variables, later layers winning. A missing file falls
// back to defaults; a file that exists but does not parse is an error.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			// Prefix only filters; the variable name still carries it.
			return envKeyTransform(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// envKeyTransform maps an environment variable name (prefix already
// stripped) to a koanf key: CONTROLLERS_HTTP_ADDR -> controllers.http.addr,
// DATA_DIR -> data.dir, CATALOG_SEED_PATH -> catalog.seed_path.
func envKeyTransform(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	parts := strings.Split(key, "_")

	switch parts[0] {
	case "controllers":
		// section + controller name + field
		if len(parts) >= 3 {
			return parts[0] + "." + parts[1] + "." + strings.Join(parts[2:], "_")
		}
	case "data", "catalog", "log":
		if len(parts) >= 2 {
			return parts[0] + "." + strings.Join(parts[1:], "_")
		}
	}
	return key
}

// SlogLevel maps the configured level string onto slog.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.Level)
	}
}
