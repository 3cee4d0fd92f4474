// Package config gathers the environment knobs the server reads at boot.
package config

import "os"

type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// DSN selects the database: a postgres:// URL or a sqlite file path.
	DSN string
	// UseMigrations switches schema setup from AutoMigrate to the SQL
	// migration files (MIGRATIONS=1).
	UseMigrations bool
	// MailFrom is the sender address for emailed reports; leaving it
	// empty disables email entirely.
	MailFrom string
}

// Load reads configuration from the environment. Defaults suit local
// development with sqlite.
func Load() Config {
	return Config{
		Addr:          getenv("ADDR", ":8080"),
		DSN:           os.Getenv("DATABASE_URL"),
		UseMigrations: os.Getenv("MIGRATIONS") == "1",
		MailFrom:      os.Getenv("MAIL_FROM"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
