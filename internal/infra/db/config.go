package db

import "os"

type Config struct {
	URL string
}

func NewConfig() Config {
	return Config{URL: os.Getenv("DB_URL")}
}

// Enabled reports whether a database is configured at all. The CSV remains
// the primary store, Postgres is an opt-in sink.
func (c Config) Enabled() bool {
	return c.URL != ""
}
