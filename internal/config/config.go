// Package config carga la configuración compartida de los servicios y del
// cliente: YAML opcional + overrides por variables de entorno RECETARIO_*.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | prod
		Env string `yaml:"env"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	// Una dirección por servicio, sin multiplexar. Los puertos default son
	// los históricos del sistema (6001/6002/6003 + 5555 para lectura).
	Auth struct {
		Addr string `yaml:"addr"`
	} `yaml:"auth"`

	Catalog struct {
		Addr     string `yaml:"addr"`      // endpoint mutante (create/edit)
		ReadAddr string `yaml:"read_addr"` // endpoint read-only (lookup/search/browse/detail)
	} `yaml:"catalog"`

	Interaction struct {
		Addr string `yaml:"addr"`
	} `yaml:"interaction"`

	Storage struct {
		// fs | postgres
		Driver   string `yaml:"driver"`
		Root     string `yaml:"root"` // data dir para el driver fs
		Postgres struct {
			DSN string `yaml:"dsn"`
		} `yaml:"postgres"`
	} `yaml:"storage"`

	Cache struct {
		// memory | redis | off
		Kind       string `yaml:"kind"`
		DefaultTTL string `yaml:"default_ttl"`
		Redis      struct {
			Addr   string `yaml:"addr"`
			DB     int    `yaml:"db"`
			Prefix string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	// Client es la config del dispatcher (cmd/recetario).
	Client struct {
		AuthURL        string `yaml:"auth_url"`
		CatalogURL     string `yaml:"catalog_url"`
		CatalogReadURL string `yaml:"catalog_read_url"`
		InteractionURL string `yaml:"interaction_url"`
		Timeout        string `yaml:"timeout"`
	} `yaml:"client"`
}

// Load lee el YAML en path (puede no existir: se parte de defaults),
// aplica overrides de entorno y completa defaults.
// Un .env en el cwd se carga best-effort antes de leer el entorno.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(b, &c); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	c.applyEnv()
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyEnv() {
	setStr(&c.App.Env, "RECETARIO_ENV")
	setStr(&c.Log.Level, "RECETARIO_LOG_LEVEL")
	setStr(&c.Auth.Addr, "RECETARIO_AUTH_ADDR")
	setStr(&c.Catalog.Addr, "RECETARIO_CATALOG_ADDR")
	setStr(&c.Catalog.ReadAddr, "RECETARIO_CATALOG_READ_ADDR")
	setStr(&c.Interaction.Addr, "RECETARIO_INTERACTION_ADDR")
	setStr(&c.Storage.Driver, "RECETARIO_STORAGE_DRIVER")
	setStr(&c.Storage.Root, "RECETARIO_STORAGE_ROOT")
	setStr(&c.Storage.Postgres.DSN, "RECETARIO_POSTGRES_DSN")
	setStr(&c.Cache.Kind, "RECETARIO_CACHE_KIND")
	setStr(&c.Cache.DefaultTTL, "RECETARIO_CACHE_TTL")
	setStr(&c.Cache.Redis.Addr, "RECETARIO_REDIS_ADDR")
	setStr(&c.Cache.Redis.Prefix, "RECETARIO_REDIS_PREFIX")
	setStr(&c.Client.AuthURL, "RECETARIO_AUTH_URL")
	setStr(&c.Client.CatalogURL, "RECETARIO_CATALOG_URL")
	setStr(&c.Client.CatalogReadURL, "RECETARIO_CATALOG_READ_URL")
	setStr(&c.Client.InteractionURL, "RECETARIO_INTERACTION_URL")
	setStr(&c.Client.Timeout, "RECETARIO_CLIENT_TIMEOUT")
}

func (c *Config) applyDefaults() {
	// sane defaults
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Auth.Addr == "" {
		c.Auth.Addr = ":6001"
	}
	if c.Catalog.Addr == "" {
		c.Catalog.Addr = ":6002"
	}
	if c.Catalog.ReadAddr == "" {
		c.Catalog.ReadAddr = ":5555"
	}
	if c.Interaction.Addr == "" {
		c.Interaction.Addr = ":6003"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "fs"
	}
	if c.Storage.Root == "" {
		c.Storage.Root = "data"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.DefaultTTL == "" {
		c.Cache.DefaultTTL = "30s"
	}
	if c.Client.AuthURL == "" {
		c.Client.AuthURL = "http://localhost:6001"
	}
	if c.Client.CatalogURL == "" {
		c.Client.CatalogURL = "http://localhost:6002"
	}
	if c.Client.CatalogReadURL == "" {
		c.Client.CatalogReadURL = "http://localhost:5555"
	}
	if c.Client.InteractionURL == "" {
		c.Client.InteractionURL = "http://localhost:6003"
	}
	if c.Client.Timeout == "" {
		c.Client.Timeout = "5s"
	}
}

// CacheTTL parsea Cache.DefaultTTL; "30s" si es inválido.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.DefaultTTL)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// ClientTimeout parsea Client.Timeout; "5s" si es inválido.
func (c *Config) ClientTimeout() time.Duration {
	d, err := time.ParseDuration(c.Client.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

func setStr(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}
