package config

import "net/url"

// Config holds runtime settings shared by the shell and the migration tool.
//
// The connection parameters are read once at startup and handed to the
// database client at construction; nothing reads them globally afterwards.
type Config struct {
	DBAddr     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	LogLevel   string
	NoClear    bool
}

// LoadDefaults populates c with the lab defaults of the BuyPy deployment.
// NOTE: the password default is for the lab VM only and must be overridden.
func (c *Config) LoadDefaults() {
	c.DBAddr = "192.168.56.104:5432"
	c.DBUser = "operator"
	c.DBPassword = "abc"
	c.DBName = "BuyPy"
	c.DBSSLMode = "disable"
	c.LogLevel = "info"
	c.NoClear = false
}

// DSN renders the connection parameters as a postgres:// URL accepted by the
// pgx driver.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   c.DBAddr,
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		q := url.Values{}
		q.Set("sslmode", c.DBSSLMode)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
