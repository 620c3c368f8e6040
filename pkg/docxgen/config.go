package docxgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/imaging"
	"github.com/benjaminschreck/go-docxgen/pkg/docxgen/packager"
)

// Config contains all configuration options for building documents
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level"`
	// LogTag is attached to every log line as the "tag" field
	LogTag string `yaml:"log_tag"`
	// CompressionThreshold is the largest image, in bytes, embedded without re-encoding
	CompressionThreshold int `yaml:"compression_threshold"`
	// JPEGQuality is used when an oversized image is re-encoded (1-100)
	JPEGQuality int `yaml:"jpeg_quality"`
	// PageSize is "a4" or "letter"
	PageSize string `yaml:"page_size"`
	// RenderUnderline writes the underline flag of formatted runs to the package
	RenderUnderline bool `yaml:"render_underline"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func loadGlobalConfig() {
	configOnce.Do(func() {
		globalConfigMutex.Lock()
		if globalConfig == nil {
			globalConfig = ConfigFromEnvironment()
		}
		globalConfigMutex.Unlock()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:             "info",
		LogTag:               "docxgen",
		CompressionThreshold: imaging.DefaultThreshold,
		JPEGQuality:          imaging.DefaultQuality,
		PageSize:             packager.PageA4.Name,
		RenderUnderline:      false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()
	applyEnvironment(config)
	return config
}

func applyEnvironment(config *Config) {
	// DOCXGEN_LOG_LEVEL
	if val := os.Getenv("DOCXGEN_LOG_LEVEL"); val != "" {
		config.LogLevel = strings.ToLower(val)
	}

	// DOCXGEN_LOG_TAG
	if val := os.Getenv("DOCXGEN_LOG_TAG"); val != "" {
		config.LogTag = val
	}

	// DOCXGEN_COMPRESSION_THRESHOLD
	if val := os.Getenv("DOCXGEN_COMPRESSION_THRESHOLD"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.CompressionThreshold = n
		}
	}

	// DOCXGEN_JPEG_QUALITY
	if val := os.Getenv("DOCXGEN_JPEG_QUALITY"); val != "" {
		if q, err := strconv.Atoi(val); err == nil {
			config.JPEGQuality = q
		}
	}

	// DOCXGEN_PAGE_SIZE
	if val := os.Getenv("DOCXGEN_PAGE_SIZE"); val != "" {
		config.PageSize = strings.ToLower(val)
	}

	// DOCXGEN_RENDER_UNDERLINE
	if val := os.Getenv("DOCXGEN_RENDER_UNDERLINE"); val != "" {
		config.RenderUnderline = parseBool(val)
	}
}

// LoadConfigFile reads a YAML configuration file. Fields missing from the
// file keep their defaults, and environment variables override the file.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDocumentError("read config", path, err)
	}
	defer f.Close()

	config, err := ParseConfig(f)
	if err != nil {
		return nil, NewDocumentError("parse config", path, err)
	}
	return config, nil
}

// ParseConfig decodes YAML from r over the defaults, then applies the
// environment and validates the result.
func ParseConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
	}
	applyEnvironment(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	config := *overrides

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.LogTag == "" {
		config.LogTag = defaults.LogTag
	}
	if config.CompressionThreshold == 0 {
		config.CompressionThreshold = defaults.CompressionThreshold
	}
	if config.JPEGQuality == 0 {
		config.JPEGQuality = defaults.JPEGQuality
	}
	if config.PageSize == "" {
		config.PageSize = defaults.PageSize
	}

	return &config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	verr := &ValidationError{}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}
	if !validLogLevels[c.LogLevel] {
		verr.add("log_level", "invalid log level: "+c.LogLevel)
	}

	if c.CompressionThreshold <= 0 {
		verr.add("compression_threshold", "must be positive")
	}

	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		verr.add("jpeg_quality", "must be between 1 and 100")
	}

	if _, ok := packager.ParsePageSize(c.PageSize); !ok {
		verr.add("page_size", "unknown page size: "+c.PageSize)
	}

	if len(verr.Issues) > 0 {
		return verr
	}
	return nil
}

// Page returns the page geometry named by PageSize, falling back to A4.
func (c *Config) Page() packager.PageSize {
	if page, ok := packager.ParsePageSize(c.PageSize); ok {
		return page
	}
	return packager.PageA4
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	loadGlobalConfig()

	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	configOnce.Do(func() {})
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger outside the lock: the logger reads the config.
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
