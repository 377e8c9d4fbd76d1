// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/factiva-engine/pkg/types"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	for _, dev := range []bool{false, true} {
		l, err := New(types.LogConfig{Level: "debug", Development: dev})
		require.NoError(t, err)
		require.NotNil(t, l)
		l.With(String("file", "a.rtf")).Debug("ready")
	}
}

func TestFromZap(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromZap(zap.New(core)).With(String("file", "news.rtf"))

	l.Debug("hidden")
	l.Info("converted", Int("articles", 3))
	l.Error("failed", Error(errors.New("boom")))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "converted", entries[0].Message)
	assert.Equal(t, "news.rtf", entries[0].ContextMap()["file"])
	assert.EqualValues(t, 3, entries[0].ContextMap()["articles"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Info("nothing", Bool("ok", true))
	assert.Equal(t, l, l.With(Strings("k", []string{"v"})))
	assert.NoError(t, l.Sync())
}
