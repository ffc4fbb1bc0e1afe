package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Port:       "8080",
			JWTSecret:  "secure-secret-at-least-32-chars-long",
			DBPassword: "secure-password",
			DBSSLMode:  "require",
			Env:        "development",
		}
	}

	t.Run("valid development config", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		c := valid()
		c.Port = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		c := valid()
		c.JWTSecret = ""
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default jwt secret", func(t *testing.T) {
		c := valid()
		c.Env = "production"
		c.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		c := valid()
		c.Env = "production"
		c.JWTSecret = "short-secret"
		assert.Error(t, c.Validate())
	})

	t.Run("production rejects default db password", func(t *testing.T) {
		c := valid()
		c.Env = "prod"
		c.DBPassword = "password"
		assert.Error(t, c.Validate())
	})

	t.Run("development tolerates weak values", func(t *testing.T) {
		c := valid()
		c.JWTSecret = "weak"
		c.DBPassword = "password"
		assert.NoError(t, c.Validate())
	})
}
