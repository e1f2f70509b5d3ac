package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Classifier struct {
		Threshold int `mapstructure:"threshold"`
	} `mapstructure:"classifier"`

	Tagger struct {
		Engine           string `mapstructure:"engine"` // "lexicon" or "prose"
		SegmentSentences bool   `mapstructure:"segment_sentences"`
	} `mapstructure:"tagger"`

	Cache struct {
		Backend string        `mapstructure:"backend"` // "memory", "redis" or "none"
		TTL     time.Duration `mapstructure:"ttl"`
		Prefix  string        `mapstructure:"prefix"`
	} `mapstructure:"cache"`

	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`

	Redis struct {
		Address  string `mapstructure:"address"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`

	Worker struct {
		Concurrency int            `mapstructure:"concurrency"`
		Queues      map[string]int `mapstructure:"queues"`
	} `mapstructure:"worker"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"server"`

	Filter struct {
		Paused bool `mapstructure:"paused"` // start with filtering switched off
	} `mapstructure:"filter"`

	Batch struct {
		Parallelism int `mapstructure:"parallelism"`
	} `mapstructure:"batch"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

const (
	EngineLexicon = "lexicon"
	EngineProse   = "prose"

	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("classifier.threshold", 10)
	v.SetDefault("tagger.engine", EngineLexicon)
	v.SetDefault("tagger.segment_sentences", true)
	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.prefix", "titleguard:result:")
	v.SetDefault("database.path", "")
	v.SetDefault("redis.address", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("worker.concurrency", 10)
	v.SetDefault("worker.queues", map[string]int{"default": 1})
	v.SetDefault("server.addr", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("filter.paused", false)
	v.SetDefault("batch.parallelism", 0)
	v.SetDefault("log.level", "info")
}

// LoadConfig reads config.yaml from the working directory, overlaid with
// TITLEGUARD_* environment variables.
func LoadConfig() (*Config, error) {
	return load(viper.GetViper(), ".")
}

func load(v *viper.Viper, dir string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// TITLEGUARD_CACHE_BACKEND -> cache.backend
	v.SetEnvPrefix("TITLEGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The worker and the cache usually share the standard Redis URL variable.
	v.BindEnv("redis.address", "TITLEGUARD_REDIS_ADDRESS", "REDIS_ADDR")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if the config file doesn't exist; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &config, nil
}

// ListenAddr is the host:port the API server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Addr, c.Server.Port)
}
