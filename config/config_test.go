package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// All tests pin the JWT secret through the environment so Load never falls
// through to generating and persisting a key file.
const testSecret = "config-test-secret-key"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BANDSERVER_JWT_SECRET", testSecret)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultAddress, cfg.ListenAddress)
	assert.Equal(t, defaultPort, cfg.ListenPort)
	assert.Equal(t, "band.json", filepath.Base(cfg.StoreFilePath))
	assert.Equal(t, "band.lang", filepath.Base(cfg.LangFilePath))
	assert.Equal(t, defaultSaveInterval, cfg.SaveInterval)
	assert.True(t, cfg.EnableBackup)
	assert.Equal(t, testSecret, cfg.JwtSecret)
	assert.Equal(t, defaultTokenLifetime, cfg.TokenLifetime)
	assert.Equal(t, defaultBcryptCost, cfg.BcryptCost)
	assert.Equal(t, defaultAdminPassword, cfg.AdminPassword)
}

func TestLoadFlagsOverrideDefaults(t *testing.T) {
	t.Setenv("BANDSERVER_JWT_SECRET", testSecret)
	tempDir := t.TempDir()
	storePath := filepath.Join(tempDir, "custom.json")

	cfg, err := Load([]string{
		"-port", "9090",
		"-store-file", storePath,
		"-save-interval", "250ms",
		"-enable-backup=false",
		"-admin-password", "flag-password",
	})
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ListenPort)
	assert.Equal(t, storePath, cfg.StoreFilePath)
	assert.Equal(t, 250*time.Millisecond, cfg.SaveInterval)
	assert.False(t, cfg.EnableBackup)
	assert.Equal(t, "flag-password", cfg.AdminPassword)
}

func TestLoadEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("BANDSERVER_JWT_SECRET", testSecret)
	t.Setenv("BANDSERVER_LISTEN_PORT", "7070")
	t.Setenv("BANDSERVER_ENABLE_BACKUP", "no")
	t.Setenv("BANDSERVER_ADMIN_PASSWORD", "env-password")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.ListenPort)
	assert.False(t, cfg.EnableBackup)
	assert.Equal(t, "env-password", cfg.AdminPassword)
}

func TestLoadFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("BANDSERVER_JWT_SECRET", testSecret)
	t.Setenv("BANDSERVER_LISTEN_PORT", "7070")

	cfg, err := Load([]string{"-port", "9090"})
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.ListenPort)
}

func TestLoadInvalidSaveIntervalFallsBack(t *testing.T) {
	t.Setenv("BANDSERVER_JWT_SECRET", testSecret)

	cfg, err := Load([]string{"-save-interval", "not-a-duration"})
	require.NoError(t, err, "A bad duration falls back, it does not fail startup")
	assert.Equal(t, defaultSaveInterval, cfg.SaveInterval)
}

func TestLoadRejectsDirectoryStorePath(t *testing.T) {
	t.Setenv("BANDSERVER_JWT_SECRET", testSecret)
	tempDir := t.TempDir()

	_, err := Load([]string{"-store-file", tempDir})
	assert.Error(t, err, "A directory cannot be the store file")
}

func TestLoadJwtSecretFromFile(t *testing.T) {
	// No env secret: the explicit file must win.
	os.Unsetenv("BANDSERVER_JWT_SECRET")
	tempDir := t.TempDir()
	secretFile := filepath.Join(tempDir, "secret.key")
	require.NoError(t, os.WriteFile(secretFile, []byte("  file-secret \n"), 0600))

	cfg, err := Load([]string{"-jwt-secret-file", secretFile})
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.JwtSecret, "File secrets are trimmed")
}

func TestLoadJwtSecretFilePrecedesEnvironment(t *testing.T) {
	t.Setenv("BANDSERVER_JWT_SECRET", "env-secret")
	tempDir := t.TempDir()
	secretFile := filepath.Join(tempDir, "secret.key")
	require.NoError(t, os.WriteFile(secretFile, []byte("file-secret"), 0600))

	cfg, err := Load([]string{"-jwt-secret-file", secretFile})
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.JwtSecret)
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("BANDSERVER_TEST_BOOL", "yes")
	assert.True(t, getEnvBool("BANDSERVER_TEST_BOOL", false))

	t.Setenv("BANDSERVER_TEST_BOOL", "0")
	assert.False(t, getEnvBool("BANDSERVER_TEST_BOOL", true))

	t.Setenv("BANDSERVER_TEST_BOOL", "maybe")
	assert.True(t, getEnvBool("BANDSERVER_TEST_BOOL", true), "Garbage keeps the fallback")

	os.Unsetenv("BANDSERVER_TEST_BOOL")
	assert.False(t, getEnvBool("BANDSERVER_TEST_BOOL", false))
}
