package db

import "strings"

const defaultSQLitePath = "healthbuddy.db"

// NormalizeDSN trims quotes and whitespace and substitutes the default
// sqlite file when no DSN is configured. A postgres:// or postgresql://
// URL selects the postgres driver; anything else is treated as a sqlite
// path.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return defaultSQLitePath
	}
	return s
}

// IsPostgres reports whether dsn selects the postgres driver.
func IsPostgres(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}
