package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvSeed          = "FARMSTEAD_SEED"
	EnvStartingMoney = "FARMSTEAD_STARTING_MONEY"
	EnvMaxEnergy     = "FARMSTEAD_MAX_ENERGY"
	EnvLogLevel      = "FARMSTEAD_LOG_LEVEL"
	EnvLogFormat     = "FARMSTEAD_LOG_FORMAT"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvImageModel    = "FARMSTEAD_IMAGE_MODEL"
)

type Config struct {
	Seed          int64  `json:"seed,omitempty"`
	// StartingMoney is nil when unset; a pointer keeps an explicit 0.
	StartingMoney *int   `json:"starting_money,omitempty"`
	MaxEnergy     int    `json:"max_energy,omitempty"`
	LogLevel      string `json:"log_level,omitempty"`
	LogFormat     string `json:"log_format,omitempty"`
	ImageModel    string `json:"image_model,omitempty"`
	// AssetTimeoutSeconds bounds one visuals refresh; zero means no limit.
	AssetTimeoutSeconds int  `json:"asset_timeout_seconds,omitempty"`
	GenerateOnStart     bool `json:"generate_on_start,omitempty"`

	// GeminiAPIKey is only ever read from the environment.
	GeminiAPIKey string `json:"-"`
}

func Default() Config {
	return Config{
		LogLevel:   "info",
		LogFormat:  "text",
		ImageModel: DefaultImageModel(),
	}
}

func (c Config) AssetTimeout() time.Duration {
	if c.AssetTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.AssetTimeoutSeconds) * time.Second
}

// Load reads the config file from the app support directory, then applies
// .env and process environment overrides.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, err
	}
	// A missing .env is normal outside development.
	_ = godotenv.Load()
	return ApplyEnv(cfg, os.LookupEnv)
}

func LoadFile(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.ImageModel = NormalizeImageModel(cfg.ImageModel)
	return cfg, nil
}

// ReadEnvFile parses a dotenv file without touching the process environment.
func ReadEnvFile(path string) (map[string]string, error) {
	return godotenv.Read(path)
}

func ApplyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if v, ok := get(EnvStartingMoney); ok {
		money, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvStartingMoney, err)
		}
		cfg.StartingMoney = &money
	}
	if v, ok := get(EnvMaxEnergy); ok {
		energy, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvMaxEnergy, err)
		}
		cfg.MaxEnergy = energy
	}
	if v, ok := get(EnvLogLevel); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := get(EnvLogFormat); ok {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v, ok := get(EnvGeminiAPIKey); ok {
		cfg.GeminiAPIKey = v
	}
	if v, ok := get(EnvImageModel); ok {
		cfg.ImageModel = NormalizeImageModel(v)
	}
	return cfg, nil
}

func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(path, cfg)
}

// SaveFile writes through a temp file and renames it into place.
func SaveFile(path string, cfg Config) error {
	cfg.ImageModel = NormalizeImageModel(cfg.ImageModel)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	cleanup = false
	return nil
}
