package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

const envPrefix = "COUNCILS_"

// Config holds every setting of an arrangement run, for both the CLI and the upload server
type Config struct {
	Letters   string `yaml:"letters"`
	Separator string `yaml:"separator"`
	Mode      string `yaml:"mode"`     // fixed | free
	Strict    bool   `yaml:"strict"`   // Free mode only
	Grouping  string `yaml:"grouping"` // greedy | sat
	Solver    string `yaml:"solver"`   // gini | kissat | cadical | cryptominisat
	Workers   int    `yaml:"workers"`
	Marker    string `yaml:"marker"` // Expression over `value` telling whether a cell marks an assignment

	// Executable paths of external SAT solvers, keyed by solver name
	Solvers map[string]any `yaml:"solvers"`

	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Addr      string `yaml:"addr"`
	BodyLimit int    `yaml:"body_limit"` // Bytes
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		Letters:   "ABCD",
		Separator: ";",
		Mode:      "fixed",
		Grouping:  "greedy",
		Solver:    "gini",
		Marker:    `value != ""`,
		Solvers:   map[string]any{},
		Server: ServerConfig{
			Addr:      ":8080",
			BodyLimit: 4 << 20,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path (defaults when it does not exist), then applies the .env file and
// COUNCILS_* environment overrides
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		} else if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	// A missing .env file is not an error, the process environment is used as is
	_ = godotenv.Load()

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	overrides := map[string]*string{
		"LETTERS":   &c.Letters,
		"SEPARATOR": &c.Separator,
		"MODE":      &c.Mode,
		"GROUPING":  &c.Grouping,
		"SOLVER":    &c.Solver,
		"MARKER":    &c.Marker,
		"ADDR":      &c.Server.Addr,
		"LOG_LEVEL": &c.Logging.Level,
	}
	for key, target := range overrides {
		if value := os.Getenv(envPrefix + key); value != "" {
			*target = value
		}
	}

	if value := os.Getenv(envPrefix + "STRICT"); value != "" {
		strict, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid %vSTRICT: %w", envPrefix, err)
		}
		c.Strict = strict
	}
	if value := os.Getenv(envPrefix + "WORKERS"); value != "" {
		workers, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid %vWORKERS: %w", envPrefix, err)
		}
		c.Workers = workers
	}

	// COUNCILS_<NAME>_PATH points at an external solver executable
	for _, entry := range os.Environ() {
		key, value, _ := strings.Cut(entry, "=")
		if name, ok := strings.CutPrefix(key, envPrefix); ok && strings.HasSuffix(name, "_PATH") && value != "" {
			if c.Solvers == nil {
				c.Solvers = map[string]any{}
			}
			c.Solvers[strings.ToLower(strings.TrimSuffix(name, "_PATH"))] = value
		}
	}
	return nil
}

// SolverPath returns the configured executable path of an external solver ("" when none is set)
func (c *Config) SolverPath(solver string) (string, error) {
	var paths map[string]string
	if err := mapstructure.Decode(c.Solvers, &paths); err != nil {
		return "", fmt.Errorf("invalid solvers section: %w", err)
	}
	return paths[solver], nil
}
