// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logger

// NoOpLogger discards every entry. Use it in tests or when logging is off.
type NoOpLogger struct{}

// NewNop creates a no-op logger.
func NewNop() Logger {
	return NoOpLogger{}
}

func (NoOpLogger) Debug(string, ...Field) {}
func (NoOpLogger) Info(string, ...Field)  {}
func (NoOpLogger) Warn(string, ...Field)  {}
func (NoOpLogger) Error(string, ...Field) {}

func (l NoOpLogger) With(...Field) Logger { return l }

func (NoOpLogger) Sync() error { return nil }
