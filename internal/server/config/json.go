package config

import (
	"encoding/json"
	"os"

	"github.com/mizukilab/gochat/internal/flagx"
)

// JsonConfig is the DTO for reading JSON configuration files. After
// unmarshalling, its fields are copied into the runtime Config struct.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	MetricsAddr      string `json:"metrics_addr"`
	DatabaseDSN      string `json:"database_dsn"`
	RedisAddr        string `json:"redis_addr"`
	RedisPassword    string `json:"redis_password"`
	RedisDB          int    `json:"redis_db"`
	SeedDemoData     bool   `json:"seed_demo_data"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config flags; when
// neither is set no file is loaded. A file that cannot be read or parsed
// is a startup fault and panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	// prefill with current values so omitted keys keep their defaults
	c := &JsonConfig{
		EndpointAddrGRPC: config.EndpointAddrGRPC,
		MetricsAddr:      config.MetricsAddr,
		DatabaseDSN:      config.DatabaseDSN,
		RedisAddr:        config.RedisAddr,
		RedisPassword:    config.RedisPassword,
		RedisDB:          config.RedisDB,
		SeedDemoData:     config.SeedDemoData,
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.MetricsAddr = c.MetricsAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.RedisAddr = c.RedisAddr
	config.RedisPassword = c.RedisPassword
	config.RedisDB = c.RedisDB
	config.SeedDemoData = c.SeedDemoData
}
