// Package config loads runtime configuration for the backoffice binaries.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   database host:port
//	-u string   database user
//	-p string   database password
//	-d string   database name
//	-s string   PostgreSQL sslmode
//	-l string   log level (debug, info, warn, error)
//	-no-clear   do not clear the terminal between menu redraws
//
// # JSON schema
//
//	{
//	  "db_addr": "192.168.56.104:5432",
//	  "db_user": "operator",
//	  "db_password": "abc",
//	  "db_name": "BuyPy",
//	  "db_sslmode": "disable",
//	  "log_level": "info",
//	  "no_clear": false
//	}
//
// Keys absent from the file keep their default value.
//
// The migration tool additionally reads seeding flags, see LoadSeedConfig.
package config
