package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies the built-in defaults form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder(nil).withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "go-notes", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesWin verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourcesWin(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0", TokenIssuer: "issuer"}},
		&StructuredConfig{Server: Server{AllowedOrigins: []string{"http://a"}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, []string{"http://a"}, cfg.Server.AllowedOrigins)
}

// TestBuild_RejectsUnknownDriver verifies driver validation.
func TestBuild_RejectsUnknownDriver(t *testing.T) {
	b := newConfigBuilder(nil).withDefaults()
	b.configs = append(b.configs, &StructuredConfig{Storage: Storage{DB: DB{Driver: "mysql"}}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFile verifies that variables from the dotenv file are
// visible to withEnv.
func TestWithDotEnv_LoadsFile(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Cleanup(func() { _ = os.Unsetenv("APP_VERSION") })

	b := newConfigBuilder(nil).withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.Version)
}

// TestWithDotEnv_DoesNotOverrideEnvironment verifies that variables already
// set in the environment keep their value.
func TestWithDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	clearEnvVars(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	t.Setenv("APP_VERSION", "from-env")

	b := newConfigBuilder(nil).withDotEnv().withEnv()

	require.NoError(t, b.err)
	assert.Equal(t, "from-env", b.configs[0].App.Version)
}

// TestWithDotEnv_MissingFileIgnored verifies that a missing dotenv file is not
// an error.
func TestWithDotEnv_MissingFileIgnored(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder(nil).withDotEnv()
	assert.NoError(t, b.err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder(nil)
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a malformed variable sets b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "later"})

	b := newConfigBuilder(nil).withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_StoresRest verifies that positional arguments are kept.
func TestWithFlags_StoresRest(t *testing.T) {
	b := newConfigBuilder([]string{"-a", "localhost:9000", "list"})
	assert.Same(t, b, b.withFlags())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, []string{"list"}, b.rest)
}

// TestWithFlags_SetsErrorOnBadFlag verifies that parsing errors are recorded.
func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder([]string{"-a", "nowhere"}).withFlags()
	assert.Error(t, b.err)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when no
// config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// FilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := writeConfigFile(t, "first.json", `{"app": {"version": "first"}}`)
	last := writeConfigFile(t, "last.yaml", "app:\n  version: last-wins\n")

	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: first},
		&StructuredConfig{FilePath: ""},
		&StructuredConfig{FilePath: last},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].App.Version)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestFullChain_Priority verifies defaults < env < flags < file.
func TestFullChain_Priority(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":        "env",
		"APP_TOKEN_SIGN_KEY": "env-key",
		"APP_TOKEN_ISSUER":   "env-issuer",
		"ENV_FILE":           filepath.Join(t.TempDir(), "absent.env"),
	})
	file := writeConfigFile(t, "cfg.json", `{"app": {"token_issuer": "file-issuer"}}`)

	cfg, err := newConfigBuilder([]string{"-token-sign-key", "flag-key", "-c", file}).
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags().
		withFile().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "file-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
}

// ── client config ─────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second}}
	assert.NoError(t, valid.validate())

	noAddress := ClientConfig{Adapter: ClientAdapter{RequestTimeout: time.Second}}
	assert.ErrorIs(t, noAddress.validate(), ErrInvalidAdapterConfigs)

	noTimeout := ClientConfig{Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080"}}
	assert.ErrorIs(t, noTimeout.validate(), ErrInvalidAdapterConfigs)
}
