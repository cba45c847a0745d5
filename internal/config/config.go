package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const appName = "imgedit"

type Config struct {
	Fal         FalConfig         `mapstructure:"fal" yaml:"fal"`
	Image       ImageConfig       `mapstructure:"image" yaml:"image"`
	ObjectStore ObjectStoreConfig `mapstructure:"objectstore" yaml:"objectstore"`
}

// FalConfig configures the generation endpoint and how input images reach it.
type FalConfig struct {
	APIKey          string        `mapstructure:"api_key" yaml:"api_key"`
	Endpoint        string        `mapstructure:"endpoint" yaml:"endpoint"`
	StorageEndpoint string        `mapstructure:"storage_endpoint" yaml:"storage_endpoint"`
	Upload          string        `mapstructure:"upload" yaml:"upload"`   // inline, upload or objectstore
	Timeout         time.Duration `mapstructure:"timeout" yaml:"timeout"` // 0 keeps the transport default
}

// ImageConfig holds per-request defaults.
type ImageConfig struct {
	Size      string `mapstructure:"size" yaml:"size"`
	MaxBytes  int64  `mapstructure:"max_bytes" yaml:"max_bytes"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	Catalog   string `mapstructure:"catalog" yaml:"catalog"` // quick prompt catalog
}

// ObjectStoreConfig configures the S3-compatible bucket used by the
// objectstore upload strategy.
type ObjectStoreConfig struct {
	Endpoint  string        `mapstructure:"endpoint" yaml:"endpoint"`
	AccessKey string        `mapstructure:"access_key" yaml:"access_key"`
	SecretKey string        `mapstructure:"secret_key" yaml:"secret_key"`
	Bucket    string        `mapstructure:"bucket" yaml:"bucket"`
	Region    string        `mapstructure:"region" yaml:"region"`
	UseSSL    bool          `mapstructure:"use_ssl" yaml:"use_ssl"`
	Prefix    string        `mapstructure:"prefix" yaml:"prefix"`
	PublicURL string        `mapstructure:"public_url" yaml:"public_url"`
	Expiry    time.Duration `mapstructure:"expiry" yaml:"expiry"`
}

// Load reads .env, then config.yaml from the config directory or the
// working directory. A missing file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}
	return LoadFrom(configPath, ".")
}

// LoadFrom reads config.yaml from the first of dirs that has one.
func LoadFrom(dirs ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	resolveFalCredentials(&cfg.Fal)
	resolveObjectStoreCredentials(&cfg.ObjectStore)
	cfg.Image.OutputDir = expandEnv(cfg.Image.OutputDir)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("fal.endpoint", "https://fal.run/fal-ai/qwen-image-edit-plus")
	v.SetDefault("fal.storage_endpoint", "https://rest.alpha.fal.ai/storage/upload")
	v.SetDefault("fal.upload", "inline")
	v.SetDefault("image.size", "square_hd")
	v.SetDefault("image.max_bytes", 10<<20)
	v.SetDefault("image.output_dir", "~/Pictures/imgedit")
	v.SetDefault("image.catalog", "qwen")
	v.SetDefault("objectstore.region", "us-east-1")
	v.SetDefault("objectstore.use_ssl", true)
	v.SetDefault("objectstore.prefix", "imgedit")
	v.SetDefault("objectstore.expiry", time.Hour)
}

// resolveFalCredentials resolves the fal key from config or environment.
// FAL_KEY is the variable fal's own clients read.
func resolveFalCredentials(cfg *FalConfig) {
	cfg.APIKey = expandEnv(cfg.APIKey)
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("FAL_KEY")
	}
	cfg.Endpoint = expandEnv(cfg.Endpoint)
	cfg.StorageEndpoint = expandEnv(cfg.StorageEndpoint)
}

func resolveObjectStoreCredentials(cfg *ObjectStoreConfig) {
	cfg.Endpoint = expandEnv(cfg.Endpoint)
	cfg.AccessKey = expandEnv(cfg.AccessKey)
	if cfg.AccessKey == "" {
		cfg.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	}
	cfg.SecretKey = expandEnv(cfg.SecretKey)
	if cfg.SecretKey == "" {
		cfg.SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	}
}

// expandEnv expands ${VAR} or $VAR in a string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return os.Getenv(s[2 : len(s)-1])
	}
	if strings.HasPrefix(s, "$") {
		return os.Getenv(s[1:])
	}
	return s
}

// Redacted returns a copy safe to print: secrets are replaced.
func (c Config) Redacted() Config {
	mask := func(s string) string {
		if s == "" {
			return ""
		}
		return "[REDACTED]"
	}
	c.Fal.APIKey = mask(c.Fal.APIKey)
	c.ObjectStore.AccessKey = mask(c.ObjectStore.AccessKey)
	c.ObjectStore.SecretKey = mask(c.ObjectStore.SecretKey)
	return c
}

// YAML renders the config with secrets redacted.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c.Redacted())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(out), nil
}

// GetConfigDir returns the XDG config directory for imgedit.
// Uses $XDG_CONFIG_HOME if set, otherwise ~/.config
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, appName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

// GetConfigPath returns the path where the config file should be located
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Exists returns true if a config file exists
func Exists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Save writes a starter config. The API key is never written: it is read
// from FAL_KEY or entered per session.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	content := fmt.Sprintf(`fal:
  endpoint: %s
  # inline (base64 data URI), upload (fal storage) or objectstore (S3 bucket)
  upload: %s
  # api_key is read from FAL_KEY; set api_key: ${MY_VAR} to use another variable

image:
  size: %s
  max_bytes: %d
  output_dir: %s
  catalog: %s
`, cfg.Fal.Endpoint, cfg.Fal.Upload, cfg.Image.Size, cfg.Image.MaxBytes, cfg.Image.OutputDir, cfg.Image.Catalog)

	return os.WriteFile(path, []byte(content), 0600)
}
