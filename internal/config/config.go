package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreNeo4j  = "neo4j"
	StoreMemory = "memory"
)

// Config contains runtime settings for the JobNest server
type Config struct {
	LogLevel    string
	Host        string // default 0.0.0.0
	Port        string // default PORT env or 3000
	Environment string

	AccessTokenSecret string
	TokenTTL          time.Duration
	CORSOrigins       []string

	StoreDriver string // neo4j or memory
	Neo4j       struct {
		URI      string
		Username string
		Password string
	}

	SheetsCredentialsPath string
}

// IsProduction reports whether cookies must be cross-site and secure
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Load reads a .env file when present and then populates config from
// environment variables
func Load() (Config, error) {
	_ = godotenv.Load()
	return fromEnv()
}

func fromEnv() (Config, error) {
	cfg := Config{
		LogLevel:    "info",
		Host:        "0.0.0.0",
		Port:        "3000",
		Environment: "development",
		TokenTTL:    5 * time.Hour,
		StoreDriver: StoreNeo4j,
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if v := os.Getenv("HOST"); v != "" {
		cfg.Host = v
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}

	cfg.AccessTokenSecret = os.Getenv("ACCESS_TOKEN_SECRET")

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil || ttl <= 0 {
			return cfg, fmt.Errorf("invalid TOKEN_TTL %q", v)
		}
		cfg.TokenTTL = ttl
	}

	for _, origin := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if v := os.Getenv("STORE_DRIVER"); v != "" {
		cfg.StoreDriver = strings.ToLower(v)
	}
	if cfg.StoreDriver != StoreNeo4j && cfg.StoreDriver != StoreMemory {
		return cfg, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	cfg.Neo4j.URI = os.Getenv("NEO4J_URI")
	cfg.Neo4j.Username = os.Getenv("NEO4J_USERNAME")
	cfg.Neo4j.Password = os.Getenv("NEO4J_PASSWORD")

	cfg.SheetsCredentialsPath = os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH")

	var missingVars []string

	if cfg.AccessTokenSecret == "" {
		missingVars = append(missingVars, "ACCESS_TOKEN_SECRET")
	}

	if cfg.StoreDriver == StoreNeo4j {
		if cfg.Neo4j.URI == "" {
			missingVars = append(missingVars, "NEO4J_URI")
		}

		if cfg.Neo4j.Username == "" {
			missingVars = append(missingVars, "NEO4J_USERNAME")
		}

		if cfg.Neo4j.Password == "" {
			missingVars = append(missingVars, "NEO4J_PASSWORD")
		}
	}

	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}
