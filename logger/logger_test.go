// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stacklok/ssokit-core/env/mocks"
)

// mockDebugProvider implements DebugProvider for testing
type mockDebugProvider struct {
	debug bool
}

func (m *mockDebugProvider) IsDebug() bool {
	return m.debug
}

func TestUnstructuredLogsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{"Default Case", "", true},
		{"Explicitly True", "true", true},
		{"Explicitly False", "false", false},
		{"Invalid Value", "not-a-bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockEnv := mocks.NewMockReader(ctrl)
			mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return(tt.envValue)

			if got := unstructuredLogsWithEnv(mockEnv); got != tt.expected {
				t.Errorf("unstructuredLogsWithEnv() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUnstructuredLogger(t *testing.T) { //nolint:paralleltest // Uses global logger state
	// Unstructured output has no key/value pairs, so only the formatted
	// variants are checked here.
	formattedLogTestCases := []struct {
		level    string
		message  string
		key      string
		value    string
		expected string
	}{
		{"DEBUG", "debug message %s and %s", "key", "value", "debug message key and value"},
		{"INFO", "info message %s and %s", "key", "value", "info message key and value"},
		{"WARN", "warn message %s and %s", "key", "value", "warn message key and value"},
		{"ERROR", "error message %s and %s", "key", "value", "error message key and value"},
	}

	for _, tc := range formattedLogTestCases { //nolint:paralleltest // Uses global logger state
		t.Run("FormattedLogs_"+tc.level, func(t *testing.T) {
			// Capture output with a buffer-backed development core instead
			// of redirecting stderr.
			var buf bytes.Buffer

			config := zap.NewDevelopmentConfig()
			config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
			config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
			config.DisableStacktrace = true
			config.DisableCaller = true

			core := zapcore.NewCore(
				zapcore.NewConsoleEncoder(config.EncoderConfig),
				zapcore.AddSync(&buf),
				zapcore.DebugLevel,
			)

			zap.ReplaceGlobals(zap.New(core))

			switch tc.level {
			case "DEBUG":
				Debugf(tc.message, tc.key, tc.value)
			case "INFO":
				Infof(tc.message, tc.key, tc.value)
			case "WARN":
				Warnf(tc.message, tc.key, tc.value)
			case "ERROR":
				Errorf(tc.message, tc.key, tc.value)
			}

			output := buf.String()
			assert.Contains(t, output, tc.level, "Expected log entry '%s' to contain log level '%s'", output, tc.level)
			assert.Contains(t, output, tc.expected, "Expected log entry '%s' to contain message '%s'", output, tc.expected)
		})
	}
}

func TestInitializeWithDebug(t *testing.T) { //nolint:paralleltest // Uses global logger state
	t.Run("Debug Mode Enabled", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEnv := mocks.NewMockReader(ctrl)
		mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return("false")

		InitializeWithOptions(mockEnv, &mockDebugProvider{debug: true})

		core, observedLogs := observer.New(zapcore.DebugLevel)
		zap.ReplaceGlobals(zap.New(core))

		Debug("debug test message")

		allEntries := observedLogs.All()
		require.Len(t, allEntries, 1, "Expected one log entry")
		assert.Equal(t, "debug", allEntries[0].Level.String())
	})

	t.Run("Debug Mode Disabled", func(t *testing.T) { //nolint:paralleltest // Uses global logger state
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockEnv := mocks.NewMockReader(ctrl)
		mockEnv.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return("false")

		InitializeWithOptions(mockEnv, &mockDebugProvider{debug: false})

		core, observedLogs := observer.New(zapcore.InfoLevel)
		zap.ReplaceGlobals(zap.New(core))

		Debug("debug test message - should not appear")
		Info("info test message")

		allEntries := observedLogs.All()
		require.Len(t, allEntries, 1, "Expected only one log entry (info)")
		assert.Equal(t, "info", allEntries[0].Level.String())
	})
}

func TestStructuredOutput(t *testing.T) { //nolint:paralleltest // Uses global logger state
	core, observedLogs := observer.New(zapcore.InfoLevel)
	zap.ReplaceGlobals(zap.New(core))

	Infow("redirect classified", "scheme", "twitterkit-abc123", "outcome", "success")

	allEntries := observedLogs.All()
	require.Len(t, allEntries, 1, "Expected exactly one log entry")

	entry := allEntries[0]
	assert.Equal(t, "info", entry.Level.String())
	assert.Equal(t, "redirect classified", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "twitterkit-abc123", fields["scheme"])
	assert.Equal(t, "success", fields["outcome"])
}
