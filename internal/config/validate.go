package config

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

func (c *Config) Validate() error {
	if c.Classifier.Threshold <= 0 {
		return errors.New("classifier.threshold must be a positive integer")
	}

	switch c.Tagger.Engine {
	case EngineLexicon, EngineProse:
	default:
		return fmt.Errorf("tagger.engine must be %q or %q, got %q", EngineLexicon, EngineProse, c.Tagger.Engine)
	}

	switch c.Cache.Backend {
	case CacheMemory, CacheNone:
	case CacheRedis:
		if c.Redis.Address == "" {
			return errors.New("redis.address is required when cache.backend is redis")
		}
	default:
		return fmt.Errorf("cache.backend must be one of memory, redis, none; got %q", c.Cache.Backend)
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}

	// Worker config
	if c.Worker.Concurrency <= 0 {
		return errors.New("worker.concurrency must be a positive integer")
	}
	if len(c.Worker.Queues) == 0 {
		return errors.New("worker.queues must define at least one queue")
	}
	for name, priority := range c.Worker.Queues {
		if name == "" {
			return errors.New("worker.queues contains an empty queue name")
		}
		if priority <= 0 {
			return fmt.Errorf("worker.queues priority for queue '%s' must be positive", name)
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	if c.Batch.Parallelism < 0 {
		return errors.New("batch.parallelism must not be negative")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
