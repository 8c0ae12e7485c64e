package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/skooma-dev/skooma/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "skooma.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultDir is the default directory holding tree documents.
	DefaultDir = "trees"

	// DefaultLang is the default page language.
	DefaultLang = "en"

	// DefaultRegion is the default S3 region.
	DefaultRegion = "us-east-1"
)

// Config represents the complete skooma.json configuration.
type Config struct {
	// Dev contains preview server configuration.
	Dev DevConfig `json:"dev"`

	// Render contains page rendering configuration.
	Render RenderConfig `json:"render"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains preview server settings.
type DevConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Dir is the directory of tree documents to serve.
	Dir string `json:"dir,omitempty"`

	// HotReload reloads open pages when a tree document changes.
	HotReload bool `json:"hotReload"`
}

// RenderConfig contains page rendering settings.
type RenderConfig struct {
	// Pretty indents rendered pages.
	Pretty bool `json:"pretty,omitempty"`

	// Sanitize passes body markup through the UGC policy.
	Sanitize bool `json:"sanitize,omitempty"`

	// Lang is the lang attribute of rendered pages.
	Lang string `json:"lang,omitempty"`

	// StyleSheets are linked from every rendered page.
	StyleSheets []string `json:"styleSheets,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint (MinIO, R2, LocalStack).
	Endpoint string `json:"endpoint,omitempty"`

	// PathStyle uses path-style addressing.
	PathStyle bool `json:"pathStyle,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Dev: DevConfig{
			Port:      DefaultPort,
			Host:      DefaultHost,
			Dir:       DefaultDir,
			HotReload: true,
		},
		Render: RenderConfig{
			Lang: DefaultLang,
		},
		Publish: PublishConfig{
			Region: DefaultRegion,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for skooma.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E141").
				WithDetail("No skooma.json found in " + filepath.Dir(path)).
				WithSuggestion("Create skooma.json or pass flags on the command line")
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse skooma.json: " + err.Error()).
			WithSuggestion("Check that skooma.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads skooma.json from dir, falling back to defaults when
// the file does not exist.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.HasCode(err, "E141") {
		cfg = New()
		cfg.configPath = filepath.Join(dir, ConfigFileName)
		return cfg, nil
	}
	return cfg, err
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
	if c.Dev.Dir == "" {
		c.Dev.Dir = DefaultDir
	}
	if c.Render.Lang == "" {
		c.Render.Lang = DefaultLang
	}
	if c.Publish.Region == "" {
		c.Publish.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("E122").
			WithDetail("dev.port must be between 0 and 65535, got " + strconv.Itoa(c.Dev.Port))
	}
	if c.Publish.Endpoint != "" && c.Publish.Bucket == "" {
		return errors.New("E122").
			WithDetail("publish.endpoint is set but publish.bucket is empty").
			WithSuggestion("Set publish.bucket or remove publish.endpoint")
	}
	return nil
}

// DevAddress returns the address string for the preview server.
func (c *Config) DevAddress() string {
	return c.Dev.Host + ":" + strconv.Itoa(c.Dev.Port)
}

// DevURL returns the full URL for the preview server.
func (c *Config) DevURL() string {
	return "http://" + c.DevAddress()
}

// TreesPath returns the absolute path to the tree document directory.
func (c *Config) TreesPath() string {
	if filepath.IsAbs(c.Dev.Dir) {
		return c.Dev.Dir
	}
	return filepath.Join(c.Dir(), c.Dev.Dir)
}
