package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/boffice/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// The function filters os.Args down to the flags it knows using
// flagx.FilterArgs, so the config file flag and the migration tool's seeding
// flags do not trip it up.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-p", "-d", "-s", "-l"})
	args = append(args, flagx.FilterBoolArgs(os.Args[1:], []string{"-no-clear"})...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DBAddr, "a", cfg.DBAddr, "database host:port")
	fs.StringVar(&cfg.DBUser, "u", cfg.DBUser, "database user")
	fs.StringVar(&cfg.DBPassword, "p", cfg.DBPassword, "database password")
	fs.StringVar(&cfg.DBName, "d", cfg.DBName, "database name")
	fs.StringVar(&cfg.DBSSLMode, "s", cfg.DBSSLMode, "database sslmode")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.NoClear, "no-clear", cfg.NoClear, "do not clear the terminal between menu redraws")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
