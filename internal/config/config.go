// internal/config/config.go
package config

import (
	"os"

	"commentbox/internal/util"
	"commentbox/pkg/db"
)

// DefaultPort is used when no PORT environment variable is set.
const DefaultPort = "7654"

// AppConfig holds all application-wide configuration.
type AppConfig struct {
	ServerPort string
	Store      db.Config
}

// LoadConfig loads configuration from environment variables.
//
// STORE_URL and STORE_API_KEY identify the managed Postgres store and are
// required; missing either one is a fatal startup condition reported as a
// *util.DatabaseConnectionError. PORT is optional and defaults to 7654.
func LoadConfig() (*AppConfig, error) {
	storeURL := os.Getenv("STORE_URL")
	storeAPIKey := os.Getenv("STORE_API_KEY")
	if storeURL == "" || storeAPIKey == "" {
		return nil, &util.DatabaseConnectionError{Reason: "missing STORE_URL or STORE_API_KEY environment variables"}
	}

	serverPort := os.Getenv("PORT")
	if serverPort == "" {
		serverPort = DefaultPort
	}

	return &AppConfig{
		ServerPort: serverPort,
		Store: db.Config{
			URL:    storeURL,
			APIKey: storeAPIKey,
		},
	}, nil
}
