package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/boffice/internal/flagx"
)

// SeedConfig describes the operator the migration tool creates after the
// schema is up to date. An empty Username means "do not seed".
type SeedConfig struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Email     string
}

// Enabled reports whether an operator should be seeded.
func (s *SeedConfig) Enabled() bool {
	return s.Username != ""
}

// LoadSeedConfig reads the -seed-* flags. Like parseFlags it only looks at
// the flags it owns.
func LoadSeedConfig() *SeedConfig {
	sc := &SeedConfig{}

	args := flagx.FilterArgs(os.Args[1:], []string{
		"-seed-user", "-seed-password", "-seed-firstname", "-seed-lastname", "-seed-email",
	})

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.StringVar(&sc.Username, "seed-user", "", "username of the operator to create")
	fs.StringVar(&sc.Password, "seed-password", "", "plaintext password of the operator to create")
	fs.StringVar(&sc.FirstName, "seed-firstname", "", "operator first name")
	fs.StringVar(&sc.LastName, "seed-lastname", "", "operator last name")
	fs.StringVar(&sc.Email, "seed-email", "", "operator email")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	return sc
}
