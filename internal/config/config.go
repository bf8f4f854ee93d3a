package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	JWT      JWTConfig      `yaml:"jwt"`
	Redis    RedisConfig    `yaml:"redis"`
	Session  SessionConfig  `yaml:"session"`
	Grid     GridConfig     `yaml:"grid"`
	Database DatabaseConfig `yaml:"database"`
}

// ServerConfig holds server-specific settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// JWTConfig holds JWT authentication settings. An empty PublicKeyURL
// disables authentication and every connection joins as a guest.
type JWTConfig struct {
	Issuer              string `yaml:"issuer"`
	PublicKeyURL        string `yaml:"public_key_url"`
	PublicKeyRefreshHrs int    `yaml:"public_key_refresh_hours"`
}

// RedisConfig holds Redis connection settings. An empty Address skips the
// token blacklist.
type RedisConfig struct {
	Address         string `yaml:"address"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	BlacklistPrefix string `yaml:"blacklist_prefix"`
}

// SessionConfig holds query session settings
type SessionConfig struct {
	MaxClients     int `yaml:"max_clients"`
	MaxQueryRadius int `yaml:"max_query_radius"` // Largest ring/range radius a client may ask for
}

// GridConfig selects the storage backend for the tile map and how it is seeded
type GridConfig struct {
	Backend    string  `yaml:"backend"` // array, dynamic, table or shaped
	Radius     int     `yaml:"radius"`  // Hex radius of the map around the origin
	Width      int     `yaml:"width"`   // array/shaped only; 0 sizes to the radius
	Height     int     `yaml:"height"`
	Shape      string  `yaml:"shape"` // shaped only: rhombus, rectangle, ignore
	Capacity   int     `yaml:"capacity"`
	FillFactor float64 `yaml:"fill_factor"`
	Layout     string  `yaml:"layout"` // offset layout reported by default
	Seed       int64   `yaml:"seed"`   // 0 picks a random seed
}

// DatabaseConfig holds the snapshot database location
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

var backends = map[string]bool{"array": true, "dynamic": true, "table": true, "shaped": true}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and fills defaults
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.setDefaults()

	if !backends[cfg.Grid.Backend] {
		return nil, fmt.Errorf("unknown grid backend %q", cfg.Grid.Backend)
	}
	if cfg.Grid.Radius < 0 {
		return nil, fmt.Errorf("grid radius must not be negative, got %d", cfg.Grid.Radius)
	}

	return &cfg, nil
}

// Default returns the configuration an empty file would produce
func Default() *Config {
	var cfg Config
	cfg.setDefaults()
	return &cfg
}

func (cfg *Config) setDefaults() {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.PublicKeyRefreshHrs == 0 {
		cfg.JWT.PublicKeyRefreshHrs = 24
	}
	if cfg.Redis.BlacklistPrefix == "" {
		cfg.Redis.BlacklistPrefix = "blacklist:"
	}
	if cfg.Session.MaxClients == 0 {
		cfg.Session.MaxClients = 100
	}
	if cfg.Session.MaxQueryRadius == 0 {
		cfg.Session.MaxQueryRadius = 32
	}
	if cfg.Grid.Backend == "" {
		cfg.Grid.Backend = "dynamic"
	}
	if cfg.Grid.Radius == 0 {
		cfg.Grid.Radius = 16
	}
	if cfg.Grid.Shape == "" {
		cfg.Grid.Shape = "rhombus"
	}
	if cfg.Grid.Capacity == 0 {
		cfg.Grid.Capacity = 1000
	}
	if cfg.Grid.FillFactor == 0 {
		cfg.Grid.FillFactor = 0.75
	}
	if cfg.Grid.Layout == "" {
		cfg.Grid.Layout = "odd-pointy"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "./data/hextile.db"
	}
}
