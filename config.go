package main

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          int
	DBPath        string
	ProverURL     string
	ProverTimeout time.Duration
	ImageID       []string
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:          8090,
		DBPath:        "./data/attestations.db",
		ProverTimeout: 10 * time.Minute,
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if p, err := strconv.Atoi(portStr); err == nil {
			cfg.Port = p
		}
	}
	if path := os.Getenv("DB_PATH"); path != "" {
		cfg.DBPath = path
	}
	// With no prover URL the service runs its in-process dev prover.
	cfg.ProverURL = os.Getenv("PROVER_URL")
	if timeoutStr := os.Getenv("PROVER_TIMEOUT_SECONDS"); timeoutStr != "" {
		if s, err := strconv.Atoi(timeoutStr); err == nil {
			cfg.ProverTimeout = time.Duration(s) * time.Second
		}
	}
	if imageStr := os.Getenv("IMAGE_ID"); imageStr != "" {
		cfg.ImageID = strings.Split(imageStr, ",")
	}

	return cfg
}
