package logging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

type recordingFuncs struct {
	lines []string
}

func (r *recordingFuncs) record(level string) LogFunc {
	return func(format string, args ...interface{}) {
		r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
	}
}

func TestLogger_PrefixAndLevels(t *testing.T) {
	rec := &recordingFuncs{}
	logger := NewLogger("unit: bmcweb , ", LogFuncs{
		Debugf: rec.record("debug"),
		Infof:  rec.record("info"),
		Warnf:  rec.record("warn"),
		Errorf: rec.record("error"),
	})

	logger.Infof("Applying new settings, pending: %s", "Port")
	logger.Errorf("Stop failed")
	logger.LogLevelf(LogLevelWarn, "warned %d", 1)

	assert.Equal(t, []string{
		"info unit: bmcweb , Applying new settings, pending: Port",
		"error unit: bmcweb , Stop failed",
		"warn unit: bmcweb , warned 1",
	}, rec.lines)
}

func TestChildLogger_StacksPrefixes(t *testing.T) {
	rec := &recordingFuncs{}
	parent := NewLogger("module: srvcfg , ", LogFuncs{Infof: rec.record("info")})
	child := NewChildLogger("unit: dropbear , ", parent)

	child.Infof("refreshed")
	child.Debugf("dropped")

	assert.Equal(t, []string{"info module: srvcfg , unit: dropbear , refreshed"}, rec.lines)
}

func TestCoreLogger_ForwardsToParent(t *testing.T) {
	rec := &recordingFuncs{}
	parent := NewLogger("module: srvcfg , ", LogFuncs{
		Infof:  rec.record("info"),
		Errorf: rec.record("error"),
	})
	core := NewCoreLogger("module: hsu-core , ", parent)

	core.Infof("Listening at %s", "127.0.0.1:50056")
	core.Errorf("Ping server handler: %v", "boom")

	assert.Equal(t, []string{
		"info module: srvcfg , module: hsu-core , Listening at 127.0.0.1:50056",
		"error module: srvcfg , module: hsu-core , Ping server handler: boom",
	}, rec.lines)
}

func TestNopLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNopLogger().Errorf("nothing %d", 1)
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestNewZapBackend(t *testing.T) {
	backend, err := NewZapBackend(ZapConfig{Level: "debug", Format: "json", Output: "stdout"})
	require.NoError(t, err)

	logger := backend.Logger("test , ")
	logger.Infof("hello %s", "zap")

	_, err = NewZapBackend(ZapConfig{Level: "loud"})
	assert.Error(t, err)
}
