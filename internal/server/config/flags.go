package config

import (
	"flag"
	"os"

	"github.com/mizukilab/gochat/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-m string   metrics HTTP bind address (e.g., ":9090")
//	-d string   PostgreSQL DSN (empty selects the in-memory store)
//	-r string   Redis address for the session store (empty disables Redis)
//	-w string   Redis password
//	-n int      Redis database number
//	-demo       seed demo users and a shared channel on startup
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-m", "-d", "-r", "-w", "-n", "-demo"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "address and port for the metrics endpoint")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.RedisAddr, "r", config.RedisAddr, "redis address for the session store")
	fs.StringVar(&config.RedisPassword, "w", config.RedisPassword, "redis password")
	fs.IntVar(&config.RedisDB, "n", config.RedisDB, "redis database number")
	fs.BoolVar(&config.SeedDemoData, "demo", config.SeedDemoData, "seed demo users and channel")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
