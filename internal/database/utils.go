package database

import (
	"fmt"

	"github.com/chromacraft/chromacraft/config"
)

// GetDSN builds a postgres connection string for the configured database
func GetDSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
}
