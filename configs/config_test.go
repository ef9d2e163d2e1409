package configs

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// t.Setenv registers the restore, os.Unsetenv actually clears the key.
	for _, key := range []string{"DB_DRIVER", "DB_SOURCE", "PORT", "JWT_SECRET", "JWT_TTL_HOURS"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadConfig()
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "tableside.db", cfg.DBSource)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, "changeme", cfg.JWTSecret)
	require.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TABLESIDE_TEST_KEY", "value")
	require.Equal(t, "value", getEnv("TABLESIDE_TEST_KEY", "fallback"))
	require.Equal(t, "fallback", getEnv("TABLESIDE_MISSING_KEY", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TABLESIDE_TTL", "48")
	require.Equal(t, 48, getEnvInt("TABLESIDE_TTL", 24))

	t.Setenv("TABLESIDE_TTL", "not-a-number")
	require.Equal(t, 24, getEnvInt("TABLESIDE_TTL", 24))

	require.Equal(t, 24, getEnvInt("TABLESIDE_TTL_MISSING", 24))
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_SOURCE", "host=localhost dbname=tableside")
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "2")

	cfg := LoadConfig()
	require.Equal(t, "postgres", cfg.DBDriver)
	require.Equal(t, "host=localhost dbname=tableside", cfg.DBSource)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "s3cret", cfg.JWTSecret)
	require.Equal(t, 2*time.Hour, cfg.JWTTTL)
}
