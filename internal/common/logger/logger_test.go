package logger

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"verbose": zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	l := New("warn", "json")
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	console := New("debug", "console")
	assert.True(t, console.Core().Enabled(zapcore.DebugLevel))
}

func TestZapAdapter_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core)).WithFields(map[string]interface{}{"taskType": "estimate-price"})

	log.Info("job completed", map[string]interface{}{"jobKey": int64(42)})
	log.WithError(stderrors.New("boom")).Error("job failed", nil)
	log.With(map[string]interface{}{"stage": "fees"}).Warn("stage slow", nil)

	entries := logs.All()
	require.Len(t, entries, 3)

	first := entries[0].ContextMap()
	assert.Equal(t, "estimate-price", first["taskType"])
	assert.Equal(t, int64(42), first["jobKey"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	assert.Equal(t, "fees", entries[2].ContextMap()["stage"])
	assert.Equal(t, "estimate-price", entries[2].ContextMap()["taskType"])
}
