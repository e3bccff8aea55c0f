package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is everything the client needs to join a game.
type Config struct {
	Origin           string
	Room             string
	Name             string
	Mode             string
	Mission          string
	MapW             int
	MapH             int
	StatusAddr       string // empty disables the status server
	CooldownInterval time.Duration
	LogEvents        bool
}

func DefaultConfig() Config {
	return Config{
		Origin:           "http://localhost:8080",
		Room:             "default",
		Name:             "Pilot",
		CooldownInterval: defaultCooldownInterval,
		LogEvents:        true,
	}
}

// Sanitize fills blanks with defaults and drops impossible values.
func (c Config) Sanitize() Config {
	d := DefaultConfig()
	c.Origin = strings.TrimSpace(c.Origin)
	if c.Origin == "" {
		c.Origin = d.Origin
	}
	c.Room = strings.TrimSpace(c.Room)
	if c.Room == "" {
		c.Room = d.Room
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		c.Name = d.Name
	}
	c.Mode = strings.TrimSpace(c.Mode)
	c.Mission = strings.TrimSpace(c.Mission)
	c.StatusAddr = strings.TrimSpace(c.StatusAddr)
	if c.MapW < 0 {
		c.MapW = 0
	}
	if c.MapH < 0 {
		c.MapH = 0
	}
	if c.CooldownInterval <= 0 {
		c.CooldownInterval = d.CooldownInterval
	}
	return c
}

// FileConfig is the on-disk layout of the client config. Absent keys keep
// the value from the previous layer.
type FileConfig struct {
	Origin     *string `yaml:"origin" json:"origin,omitempty"`
	Room       *string `yaml:"room" json:"room,omitempty"`
	Name       *string `yaml:"name" json:"name,omitempty"`
	Mode       *string `yaml:"mode" json:"mode,omitempty"`
	Mission    *string `yaml:"mission" json:"mission,omitempty"`
	MapW       *int    `yaml:"mapW" json:"mapW,omitempty"`
	MapH       *int    `yaml:"mapH" json:"mapH,omitempty"`
	StatusAddr *string `yaml:"statusAddr" json:"statusAddr,omitempty"`
	CooldownMs *int    `yaml:"cooldownMs" json:"cooldownMs,omitempty"`
	LogEvents  *bool   `yaml:"logEvents" json:"logEvents,omitempty"`
}

func mergeFileConfig(base Config, cfg *FileConfig) Config {
	if cfg == nil {
		return base
	}
	if cfg.Origin != nil {
		base.Origin = *cfg.Origin
	}
	if cfg.Room != nil {
		base.Room = *cfg.Room
	}
	if cfg.Name != nil {
		base.Name = *cfg.Name
	}
	if cfg.Mode != nil {
		base.Mode = *cfg.Mode
	}
	if cfg.Mission != nil {
		base.Mission = *cfg.Mission
	}
	if cfg.MapW != nil {
		base.MapW = *cfg.MapW
	}
	if cfg.MapH != nil {
		base.MapH = *cfg.MapH
	}
	if cfg.StatusAddr != nil {
		base.StatusAddr = *cfg.StatusAddr
	}
	if cfg.CooldownMs != nil {
		base.CooldownInterval = time.Duration(*cfg.CooldownMs) * time.Millisecond
	}
	if cfg.LogEvents != nil {
		base.LogEvents = *cfg.LogEvents
	}
	return base
}

// loadConfigFromFile layers the YAML file at path over base. A missing file
// is not an error.
func loadConfigFromFile(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	cleanPath := filepath.Clean(path)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read client config %q: %w", cleanPath, err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("parse client config %q: %w", cleanPath, err)
	}
	return mergeFileConfig(base, &cfg), nil
}

// Environment variables read by applyEnv.
const (
	EnvOrigin     = "LSD_ORIGIN"
	EnvRoom       = "LSD_ROOM"
	EnvName       = "LSD_NAME"
	EnvMode       = "LSD_MODE"
	EnvMission    = "LSD_MISSION"
	EnvStatusAddr = "LSD_STATUS_ADDR"
)

// loadDotEnv copies variables from an env file into the process environment
// without overwriting ones already set.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %q: %w", path, err)
	}
	return nil
}

func applyEnv(base Config, lookup func(string) (string, bool)) Config {
	set := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = v
		}
	}
	set(EnvOrigin, &base.Origin)
	set(EnvRoom, &base.Room)
	set(EnvName, &base.Name)
	set(EnvMode, &base.Mode)
	set(EnvMission, &base.Mission)
	set(EnvStatusAddr, &base.StatusAddr)
	return base
}

// ConfigOverrides holds command-line values. Nil fields were not given.
type ConfigOverrides struct {
	Origin     *string
	Room       *string
	Name       *string
	Mode       *string
	Mission    *string
	MapW       *int
	MapH       *int
	StatusAddr *string
}

func (o ConfigOverrides) apply(base Config) Config {
	if o.Origin != nil {
		base.Origin = *o.Origin
	}
	if o.Room != nil {
		base.Room = *o.Room
	}
	if o.Name != nil {
		base.Name = *o.Name
	}
	if o.Mode != nil {
		base.Mode = *o.Mode
	}
	if o.Mission != nil {
		base.Mission = *o.Mission
	}
	if o.MapW != nil {
		base.MapW = *o.MapW
	}
	if o.MapH != nil {
		base.MapH = *o.MapH
	}
	if o.StatusAddr != nil {
		base.StatusAddr = *o.StatusAddr
	}
	return base
}

// ConfigSchema returns the JSON schema of FileConfig, indented.
func ConfigSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(FileConfig))
	schema.Title = "LightSpeedDuel client config"
	schema.Description = "Keys accepted in the client YAML config file"
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return data, nil
}
