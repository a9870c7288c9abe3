package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger логирует каждый запрос после его обработки.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithField("component", "http")

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"ip":       c.ClientIP(),
		}
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			fields["userID"] = userID
		}

		reqLog := entry.WithFields(fields)
		if len(c.Errors) > 0 {
			reqLog = reqLog.WithError(c.Errors.Last())
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			reqLog.Error("request")
		case status >= 400:
			reqLog.Warn("request")
		default:
			reqLog.Info("request")
		}
	}
}
