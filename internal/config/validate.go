package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 when enabled (got %d)", c.RateLimit.PerMinute)
	}

	if c.Issues.MaxListLimit < 0 {
		return fmt.Errorf("issues.max_list_limit must be >= 0 (got %d)", c.Issues.MaxListLimit)
	}

	return nil
}
