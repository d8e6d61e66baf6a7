package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Group structs carry
// envPrefix tags, so the master password is read from APP_MASTER_PASSWORD
// and the database DSN from STORAGE_DB_DATABASE_URI.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{TagName: "env", PrefixTagName: "envPrefix"}); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}
