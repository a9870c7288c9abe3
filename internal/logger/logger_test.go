package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("release", func(t *testing.T) {
		t.Setenv(gin.EnvGinMode, gin.ReleaseMode)
		t.Setenv(levelEnv, "")

		var buf bytes.Buffer
		l := New(&buf)
		assert.Equal(t, logrus.InfoLevel, l.GetLevel())

		l.WithField("component", "test").Info("hello")
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "test", entry["component"])
	})

	t.Run("debug outside release", func(t *testing.T) {
		t.Setenv(gin.EnvGinMode, gin.DebugMode)
		t.Setenv(levelEnv, "")

		l := New(new(bytes.Buffer))
		assert.Equal(t, logrus.DebugLevel, l.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
	})

	t.Run("level override", func(t *testing.T) {
		t.Setenv(gin.EnvGinMode, gin.ReleaseMode)
		t.Setenv(levelEnv, "warn")

		assert.Equal(t, logrus.WarnLevel, New(new(bytes.Buffer)).GetLevel())
	})

	t.Run("unknown level", func(t *testing.T) {
		t.Setenv(gin.EnvGinMode, gin.ReleaseMode)
		t.Setenv(levelEnv, "loud")

		var buf bytes.Buffer
		assert.Equal(t, logrus.InfoLevel, New(&buf).GetLevel())
		assert.Contains(t, buf.String(), "unknown LOG_LEVEL")
	})
}
