package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/your-org/pantry-backend/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		logging   config.LoggingConfig
		wantLevel logrus.Level
		wantJSON  bool
	}{
		{name: "JSONDebug", logging: config.LoggingConfig{Level: "debug", Format: "json"}, wantLevel: logrus.DebugLevel, wantJSON: true},
		{name: "TextWarn", logging: config.LoggingConfig{Level: "warn", Format: "text"}, wantLevel: logrus.WarnLevel},
		{name: "UnknownLevel", logging: config.LoggingConfig{Level: "loud", Format: "text"}, wantLevel: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(&config.Config{Logging: tt.logging})

			assert.Equal(t, tt.wantLevel, logger.GetLevel())
			_, isJSON := logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.wantJSON, isJSON)
		})
	}
}
