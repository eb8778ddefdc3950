package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize_SilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")

	require.NoError(t, Initialize(""))
	assert.False(t, GetLogger().Core().Enabled(zapcore.ErrorLevel))
}

func TestInitialize_FromEnv(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "warn")
	defer SetLogger(nil)

	require.NoError(t, InitializeFromEnv())
	assert.True(t, GetLogger().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, GetLogger().Core().Enabled(zapcore.InfoLevel))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestGetLogger_NilFallback(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, GetLogger())
}

func TestHTTPHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogHTTPRequest("POST", "/api/recommend/", "abc")
	LogHTTPResponse("POST", "/api/recommend/", 200, 15*time.Millisecond)
	LogSubmission(7, "abc", "Dell", "XPS13", "Ultrabook")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "HTTP request sent", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["request_id"])
	assert.Equal(t, int64(200), entries[1].ContextMap()["status_code"])
	assert.Equal(t, uint64(7), entries[2].ContextMap()["seq"])
	assert.Equal(t, "Ultrabook", entries[2].ContextMap()["category"])
}

func TestLogHTTPRequest_OmitsEmptyRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogHTTPRequest("GET", "/api/options/", "")

	_, ok := logs.All()[0].ContextMap()["request_id"]
	assert.False(t, ok)
}
