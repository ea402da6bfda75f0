package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredBotEnvVars lists the environment variables the Discord gateway
// binary cannot run without. The headless API binary has no hard
// requirements beyond defaults.
var RequiredBotEnvVars = []string{
	"DISCORD_TOKEN",
	"DISCORD_APP_ID",
	"GUILD_ID",
	"CHANNEL_ID",
}

// ValidateBotEnv checks that all variables the gateway needs are set.
func ValidateBotEnv() error {
	var missing []string
	for _, envVar := range RequiredBotEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}
