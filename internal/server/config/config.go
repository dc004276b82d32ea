// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the chat server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the public gRPC endpoint.
//   - MetricsAddr: bind address for the HTTP metrics endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - RedisAddr / RedisPassword / RedisDB: session store settings. An empty
//     RedisAddr keeps sessions in the primary store.
//   - SeedDemoData: create the demo users and channel on startup.
type Config struct {
	EndpointAddrGRPC string
	MetricsAddr      string
	DatabaseDSN      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	SeedDemoData     bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.MetricsAddr = ":9090"
	c.DatabaseDSN = ""
	c.RedisAddr = ""
	c.RedisPassword = ""
	c.RedisDB = 0
	c.SeedDemoData = false
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
