package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the shared JSON logger. Level comes from LOG_LEVEL; when
// LOG_FILE is set, entries are additionally appended there through an async
// writer so slow disks never stall a request.
func NewLogger() *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})

	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
		if err != nil {
			logger.WithError(err).Warn("falling back to stdout only logging")
			return logger
		}
		logger.SetOutput(asyncWriter)
		logger.AddHook(NewConsoleHook())
	}

	return logger
}
