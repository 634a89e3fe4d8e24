package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/boffice/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell an absent key apart from an explicit zero value.
type JsonConfig struct {
	DBAddr     *string `json:"db_addr"`
	DBUser     *string `json:"db_user"`
	DBPassword *string `json:"db_password"`
	DBName     *string `json:"db_name"`
	DBSSLMode  *string `json:"db_sslmode"`
	LogLevel   *string `json:"log_level"`
	NoClear    *bool   `json:"no_clear"`
}

// parseJson overlays cfg with the keys present in the JSON file named by
// -c / -config. Without such a flag it does nothing.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DBAddr, jc.DBAddr)
	overlay(&cfg.DBUser, jc.DBUser)
	overlay(&cfg.DBPassword, jc.DBPassword)
	overlay(&cfg.DBName, jc.DBName)
	overlay(&cfg.DBSSLMode, jc.DBSSLMode)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.NoClear, jc.NoClear)
}

func overlay[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
