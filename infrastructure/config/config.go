package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	domainconfig "osintgraph/domain/config"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Canvas limits
	MaxSessions          int  `yaml:"max_sessions"`
	MaxNodesPerGraph     int  `yaml:"max_nodes_per_graph"`
	MaxEdgesPerGraph     int  `yaml:"max_edges_per_graph"`
	AllowSelfConnections bool `yaml:"allow_self_connections"`

	// CORS
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableCORS    bool `yaml:"enable_cors"`

	// LoadedFrom lists the sources applied, lowest priority first
	LoadedFrom []string `yaml:"-"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	domain := domainconfig.DefaultDomainConfig()
	return &Config{
		ServerAddress:        ":8080",
		Environment:          "development",
		LogLevel:             "info",
		MaxSessions:          100,
		MaxNodesPerGraph:     domain.MaxNodesPerGraph,
		MaxEdgesPerGraph:     domain.MaxEdgesPerGraph,
		AllowSelfConnections: domain.AllowSelfConnections,
		CORSAllowedOrigins:   []string{"*"},
		EnableMetrics:        true,
		EnableCORS:           true,
	}
}

// LoadConfig builds the configuration from defaults, then the YAML file named
// by CONFIG_FILE if set, then environment variables.
func LoadConfig() (*Config, error) {
	cfg := Default()
	cfg.LoadedFrom = []string{"defaults"}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
		cfg.LoadedFrom = append(cfg.LoadedFrom, path)
	}

	cfg.applyEnv()
	cfg.LoadedFrom = append(cfg.LoadedFrom, "environment")

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

func (c *Config) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.ServerAddress = getEnv("SERVER_ADDRESS", c.ServerAddress)
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.MaxSessions = getEnvInt("MAX_SESSIONS", c.MaxSessions)
	c.MaxNodesPerGraph = getEnvInt("MAX_NODES_PER_GRAPH", c.MaxNodesPerGraph)
	c.MaxEdgesPerGraph = getEnvInt("MAX_EDGES_PER_GRAPH", c.MaxEdgesPerGraph)
	c.AllowSelfConnections = getEnvBool("ALLOW_SELF_CONNECTIONS", c.AllowSelfConnections)

	c.CORSAllowedOrigins = getEnvList("CORS_ALLOWED_ORIGINS", c.CORSAllowedOrigins)
	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.ServerAddress == "" {
		return fmt.Errorf("SERVER_ADDRESS is required")
	}
	switch c.Environment {
	case "development", "staging", "production", "test":
	default:
		return fmt.Errorf("ENVIRONMENT must be one of development, staging, production, test: got %q", c.Environment)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: got %q", c.LogLevel)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("MAX_SESSIONS cannot be negative")
	}
	if c.MaxNodesPerGraph < 1 {
		return fmt.Errorf("MAX_NODES_PER_GRAPH must be at least 1")
	}
	if c.MaxEdgesPerGraph < 1 {
		return fmt.Errorf("MAX_EDGES_PER_GRAPH must be at least 1")
	}
	if c.EnableCORS && len(c.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS is required when CORS is enabled")
	}

	return nil
}

// ToDomainConfig extracts the graph limits
func (c *Config) ToDomainConfig() *domainconfig.DomainConfig {
	return &domainconfig.DomainConfig{
		MaxNodesPerGraph:     c.MaxNodesPerGraph,
		MaxEdgesPerGraph:     c.MaxEdgesPerGraph,
		AllowSelfConnections: c.AllowSelfConnections,
	}
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
