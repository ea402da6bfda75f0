package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBotEnv(t *testing.T) {
	t.Run("passes when all required vars are set", func(t *testing.T) {
		for _, key := range RequiredBotEnvVars {
			t.Setenv(key, "value")
		}
		assert.NoError(t, ValidateBotEnv())
	})

	t.Run("fails and names every missing var", func(t *testing.T) {
		for _, key := range RequiredBotEnvVars {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
		t.Setenv("DISCORD_TOKEN", "token")

		err := ValidateBotEnv()
		require.Error(t, err)
		assert.NotContains(t, err.Error(), "DISCORD_TOKEN")
		assert.Contains(t, err.Error(), "DISCORD_APP_ID")
		assert.Contains(t, err.Error(), "GUILD_ID")
		assert.Contains(t, err.Error(), "CHANNEL_ID")
	})
}
