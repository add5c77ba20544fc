package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/kailas-cloud/hitfilter/internal/domain/pattern"
)

// Default pattern sources.
const (
	DefaultExcludePattern     = `.*(WEAPON|SHIELD|QUIVER|AnimObject|MagicEffectsNode|Camera).*`
	DefaultPlayerNodesPattern = `NPC [LR] (Hand|Forearm|UpperArm|Finger\d+).*`
	DefaultArmorClassifier    = `Armor.*`
	DefaultMagicClassifier    = `Magic.*`
	DefaultSplitDelimiter     = `\s*[,;]\s*`
)

// Config holds the hitfilter configuration.
type Config struct {
	Patterns PatternsConfig `yaml:"patterns"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PatternsConfig holds the name patterns compiled once at startup.
// A pattern set explicitly to an empty string is disabled and never
// matches. An omitted key keeps its default.
type PatternsConfig struct {
	Exclude         string `yaml:"exclude"`
	PlayerNodes     string `yaml:"player_nodes"`
	ArmorClassifier string `yaml:"armor_classifier"`
	MagicClassifier string `yaml:"magic_classifier"`
	SplitDelimiter  string `yaml:"split_delimiter"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path"` // node_exporter textfile collector target, empty = off
}

// Sources converts the pattern settings for pattern.Compile.
func (p PatternsConfig) Sources() pattern.Sources {
	return pattern.Sources{
		Exclude:         p.Exclude,
		PlayerNodes:     p.PlayerNodes,
		ArmorClassifier: p.ArmorClassifier,
		MagicClassifier: p.MagicClassifier,
	}
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads configuration from an explicit YAML file path.
func LoadFile(configPath string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	// Decode over the defaults so omitted keys keep them and explicit '' survives.
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied.
func Default() Config {
	return Config{
		Patterns: PatternsConfig{
			Exclude:         DefaultExcludePattern,
			PlayerNodes:     DefaultPlayerNodesPattern,
			ArmorClassifier: DefaultArmorClassifier,
			MagicClassifier: DefaultMagicClassifier,
			SplitDelimiter:  DefaultSplitDelimiter,
		},
	}
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills fields that cannot be left empty. Name patterns are
// not touched: an empty pattern means disabled.
func (c *Config) ApplyDefaults() {
	if c.Patterns.SplitDelimiter == "" {
		c.Patterns.SplitDelimiter = DefaultSplitDelimiter
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if _, err := pattern.Compile(c.Patterns.Sources()); err != nil {
		return fmt.Errorf("patterns: %w", err)
	}
	if _, err := regexp.Compile(c.Patterns.SplitDelimiter); err != nil {
		return fmt.Errorf("patterns.split_delimiter: %w", err)
	}
	if c.Logging.Level != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(c.Logging.Level)); err != nil {
			return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
