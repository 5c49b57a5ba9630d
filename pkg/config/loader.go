package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Load parses environment variables into the provided struct using `env`
// tags. Validation beyond parsing is the caller's concern.
//
// Example:
//
//	type Config struct {
//	    HTTPPort int    `env:"CATALOG_HTTP_PORT" envDefault:"8004"`
//	    MongoURI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
//	}
func Load(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
