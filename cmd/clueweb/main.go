package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"clueweb/internal/cli"
	"clueweb/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Environment defaults; a missing .env file is fine
	_ = godotenv.Load()
	defaultConfig := envOr("CLUEWEB_CONFIG", "default_config.json")
	defaultLevel := envOr("CLUEWEB_LOGLEVEL", "info")

	// 2. Parse command-line flags
	logLevel := flag.String("loglevel", defaultLevel, "Set logging level (debug, info, warn, error)")
	configPath := flag.String("config", defaultConfig, "Path to the presentation table")
	flag.Parse()

	// 3. Set up top-level dependencies (Logger)
	log := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	// 4. Load game configuration
	gameConfig, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 5. Create the CLI, injecting the logger
	ui := cli.NewCLI(log)

	// 6. Run the application with a new random source for this run
	randSource := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := ui.Run(flag.Args(), gameConfig, randSource); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
