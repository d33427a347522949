package config

import "strings"

// DSN builds the Postgres connection string, applying the TLS toggle when the
// URL does not already pin an sslmode.
func (c *AppConfig) DSN() string {
	dsn := strings.TrimSpace(c.DatabaseURL)
	if dsn == "" {
		return ""
	}
	if strings.Contains(dsn, "sslmode=") {
		return dsn
	}

	mode := "sslmode=disable"
	if c.DatabaseTLS {
		mode = "sslmode=require"
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&" + mode
	}
	return dsn + "?" + mode
}
