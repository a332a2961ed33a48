package paramfetch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamDir(t *testing.T) {
	t.Setenv(dirEnv, "")
	assert.Equal(t, filepath.Join("/data", paramDirName), ParamDir("/data"))

	t.Setenv(dirEnv, "/var/tmp/override")
	assert.Equal(t, "/var/tmp/override", ParamDir("/data"))
}

func TestSetProofsParameterCacheDirEnv(t *testing.T) {
	t.Setenv(dirEnv, "")

	SetProofsParameterCacheDirEnv("/data")
	assert.Equal(t, filepath.Join("/data", paramDirName), os.Getenv(dirEnv))

	// idempotent: a second call observes the exported value and keeps it
	SetProofsParameterCacheDirEnv("/data")
	assert.Equal(t, filepath.Join("/data", paramDirName), os.Getenv(dirEnv))
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv(gatewayEnv, "")
	t.Setenv(trustEnv, "")

	cfg, err := NewConfig("/data")
	require.NoError(t, err)
	assert.Equal(t, "/data", cfg.DataDir)
	assert.Equal(t, defaultGateway, cfg.GatewayURL)
	assert.False(t, cfg.TrustParams)
	assert.Equal(t, int64(defaultMaxConcurrent), cfg.MaxConcurrent)
}

func TestNewConfigEnv(t *testing.T) {
	t.Setenv(gatewayEnv, "https://example.com/ipfs/")
	t.Setenv(trustEnv, "1")

	cfg, err := NewConfig("/data")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/ipfs/", cfg.GatewayURL)
	assert.True(t, cfg.TrustParams)

	// only the literal "1" enables the bypass
	t.Setenv(trustEnv, "true")
	cfg, err = NewConfig("/data")
	require.NoError(t, err)
	assert.False(t, cfg.TrustParams)
}

func TestNewConfigOptions(t *testing.T) {
	t.Setenv(gatewayEnv, "https://example.com/ipfs/")

	cfg, err := NewConfig("/data",
		WithGateway("https://mirror.example.org/ipfs/"),
		WithTrustParams(true),
		WithMaxConcurrent(4),
	)
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.org/ipfs/", cfg.GatewayURL)
	assert.True(t, cfg.TrustParams)
	assert.Equal(t, int64(4), cfg.MaxConcurrent)

	_, err = NewConfig("/data", WithMaxConcurrent(0))
	require.Error(t, err)
}
