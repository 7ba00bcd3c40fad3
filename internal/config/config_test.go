package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DATABASE_NAME")
	os.Unsetenv("PORT")

	cfg := Load()

	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "storefront", cfg.DatabaseName)
	assert.Equal(t, "8000", cfg.Port)
	assert.False(t, cfg.DatabaseURLSet)
	assert.False(t, cfg.DatabaseNameSet)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "kneestore")
	t.Setenv("PORT", "9000")

	cfg := Load()

	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "kneestore", cfg.DatabaseName)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.DatabaseURLSet)
	assert.True(t, cfg.DatabaseNameSet)
}
