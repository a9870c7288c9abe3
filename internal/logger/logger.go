package logger

import (
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const levelEnv = "LOG_LEVEL"

// New инициализирует логгер. В release режиме JSON и уровень info, иначе текст и debug.
// LOG_LEVEL переопределяет уровень в обоих режимах.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv(gin.EnvGinMode) == gin.ReleaseMode {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		l.SetLevel(logrus.DebugLevel)
	}

	if raw, ok := os.LookupEnv(levelEnv); ok && raw != "" {
		level, parseErr := logrus.ParseLevel(raw)
		if parseErr != nil {
			l.WithError(parseErr).Warnf("unknown %s, keeping %s", levelEnv, l.GetLevel())
			return l
		}
		l.SetLevel(level)
	}

	return l
}
