package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"loan-recommendation-engine/internal/utils"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, utils.ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, utils.ParseLevel(" WARN "))
	assert.Equal(t, zapcore.WarnLevel, utils.ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, utils.ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, utils.ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, utils.ParseLevel("verbose"))
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { utils.SetLogger(nil) })

	require.NoError(t, utils.InitLogger("debug"))
	assert.True(t, utils.Logger.Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, utils.InitLogger("error"))
	assert.False(t, utils.Logger.Core().Enabled(zapcore.WarnLevel))
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { utils.SetLogger(nil) })

	core, logs := observer.New(zapcore.InfoLevel)
	utils.SetLogger(zap.New(core))
	utils.Logger.Info("hello", zap.String("k", "v"))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])

	utils.SetLogger(nil)
	assert.NotPanics(t, func() { utils.Logger.Info("dropped") })
}
