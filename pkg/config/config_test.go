package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, Load())
	require.NotNil(t, GlobalConfig)

	assert.Equal(t, ":7072", GlobalConfig.Server.Addr)
	assert.Equal(t, "sqlite", GlobalConfig.Database.Driver)
	assert.Equal(t, 150, GlobalConfig.Synthesis.MaxChunkLen)
	assert.Equal(t, 300*time.Millisecond, GlobalConfig.Synthesis.PacingDelay)
	assert.Equal(t, 10*time.Second, GlobalConfig.Synthesis.ChunkTimeout)
	assert.Equal(t, "en-US", GlobalConfig.Synthesis.DefaultVoice)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("SYNTHESIS_MAX_CHUNK_LEN", "80")
	t.Setenv("SYNTHESIS_PACING_DELAY", "500ms")

	require.NoError(t, Load())

	assert.Equal(t, ":9090", GlobalConfig.Server.Addr)
	assert.Equal(t, 80, GlobalConfig.Synthesis.MaxChunkLen)
	assert.Equal(t, 500*time.Millisecond, GlobalConfig.Synthesis.PacingDelay)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Load())
	assert.NoError(t, GlobalConfig.Validate())

	bad := *GlobalConfig
	bad.Database.DSN = ""
	assert.Error(t, bad.Validate())

	bad = *GlobalConfig
	bad.Synthesis.MaxChunkLen = 0
	assert.Error(t, bad.Validate())
}

func TestParseDurationFallback(t *testing.T) {
	assert.Equal(t, time.Second, parseDuration("not-a-duration", time.Second))
	assert.Equal(t, 2*time.Minute, parseDuration("2m", time.Second))
}
