package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/alfonsotech/philosophers-alliance/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go ../../schema.json

var sourceIDRe = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server read/write timeout"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Public URL used in generated RSS feed"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Mongo MongoConfig `yaml:"mongo" json:"mongo" jsonschema:"description=Primary storage configuration"`

	Fallback struct {
		Dir string `yaml:"dir" json:"dir" jsonschema:"default=data,description=Directory of the local fallback storage"`
	} `yaml:"fallback" json:"fallback" jsonschema:"description=Fallback storage configuration"`

	History struct {
		DSN string `yaml:"dsn" json:"dsn" jsonschema:"default=file:alliance.db?mode=rwc&_txlock=immediate,description=SQLite DSN of the refresh run history"`
	} `yaml:"history" json:"history" jsonschema:"description=Refresh run history configuration"`

	Schedule struct {
		Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable periodic refresh"`
		Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=6h,description=Periodic refresh interval"`
		RunOnStart bool          `yaml:"run_on_start" json:"run_on_start" jsonschema:"default=false,description=Run a refresh right after start"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Fetch FetchConfig `yaml:"fetch" json:"fetch" jsonschema:"description=Feed fetching configuration"`

	Sources []domain.Source `yaml:"sources" json:"sources" jsonschema:"required,description=Roster of publications to aggregate"`
}

// MongoConfig holds primary storage settings
type MongoConfig struct {
	URI                    string        `yaml:"uri" json:"uri" jsonschema:"required,description=MongoDB connection string (can use environment variable)"`
	Database               string        `yaml:"database" json:"database" jsonschema:"default=philosophers-alliance,description=Database name"`
	ConnectTimeout         time.Duration `yaml:"connect_timeout" json:"connect_timeout" jsonschema:"default=10s,description=Connection timeout"`
	ServerSelectionTimeout time.Duration `yaml:"server_selection_timeout" json:"server_selection_timeout" jsonschema:"default=5s,description=Server selection timeout"`
	ProbeTimeout           time.Duration `yaml:"probe_timeout" json:"probe_timeout" jsonschema:"default=3s,description=Reachability probe timeout checked before every storage call"`
}

// FetchConfig holds feed fetching settings
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed request timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=User agent for feed requests"`
	Pacing     time.Duration `yaml:"pacing" json:"pacing" jsonschema:"default=1s,description=Pause between sources during a refresh"`
	Retries    int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Attempts for transient fetch failures"`
	Aggregated bool          `yaml:"aggregated" json:"aggregated" jsonschema:"default=true,description=Also keep recent posts in the aggregated collection"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Config{}
	cfg.Schedule.Enabled = true
	cfg.Fetch.Aggregated = true
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}

	if c.Mongo.Database == "" {
		c.Mongo.Database = "philosophers-alliance"
	}
	if c.Mongo.ConnectTimeout == 0 {
		c.Mongo.ConnectTimeout = 10 * time.Second
	}
	if c.Mongo.ServerSelectionTimeout == 0 {
		c.Mongo.ServerSelectionTimeout = 5 * time.Second
	}
	if c.Mongo.ProbeTimeout == 0 {
		c.Mongo.ProbeTimeout = 3 * time.Second
	}

	if c.Fallback.Dir == "" {
		c.Fallback.Dir = "data"
	}
	if c.History.DSN == "" {
		c.History.DSN = "file:alliance.db?mode=rwc&_txlock=immediate"
	}
	if c.Schedule.Interval == 0 {
		c.Schedule.Interval = 6 * time.Hour
	}

	if c.Fetch.Timeout == 0 {
		c.Fetch.Timeout = 30 * time.Second
	}
	if c.Fetch.UserAgent == "" {
		c.Fetch.UserAgent = "Mozilla/5.0 (compatible; PhilosophersAlliance/1.0)"
	}
	if c.Fetch.Pacing == 0 {
		c.Fetch.Pacing = time.Second
	}
	if c.Fetch.Retries == 0 {
		c.Fetch.Retries = 3
	}
}

// Validate checks configuration for correctness.
// Mongo uri is checked separately by the caller as it can come from the command line.
func (c *Config) Validate() error {
	if c.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if c.Mongo.ProbeTimeout < 100*time.Millisecond {
		return fmt.Errorf("mongo.probe_timeout must be at least 100ms")
	}
	if c.Schedule.Interval < time.Minute {
		return fmt.Errorf("schedule.interval must be at least 1 minute")
	}
	if c.Fetch.Pacing < time.Second {
		return fmt.Errorf("fetch.pacing must be at least 1 second")
	}
	if c.Fetch.Retries < 1 {
		return fmt.Errorf("fetch.retries must be at least 1")
	}

	if len(c.Sources) == 0 {
		return fmt.Errorf("sources list is empty")
	}
	ids := make(map[string]bool, len(c.Sources))
	urls := make(map[string]bool, len(c.Sources))
	for i, src := range c.Sources {
		if !sourceIDRe.MatchString(src.ID) {
			return fmt.Errorf("source #%d: invalid id %q", i, src.ID)
		}
		if ids[src.ID] {
			return fmt.Errorf("source #%d: duplicate id %q", i, src.ID)
		}
		ids[src.ID] = true
		if src.Name == "" {
			return fmt.Errorf("source %s: name is required", src.ID)
		}
		if src.SubstackURL == "" {
			return fmt.Errorf("source %s: substack_url is required", src.ID)
		}
		if urls[src.SubstackURL] {
			return fmt.Errorf("source %s: duplicate substack url %s", src.ID, src.SubstackURL)
		}
		urls[src.SubstackURL] = true
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
