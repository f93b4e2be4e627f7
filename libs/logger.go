package libs

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Logger = NewLogger("development", "info", os.Stdout)

// NewLogger builds the application logger. Production output is JSON so it
// can be shipped as-is; everything else uses the text formatter.
func NewLogger(env, level string, out io.Writer) *logrus.Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	var formatter logrus.Formatter = &logrus.TextFormatter{DisableLevelTruncation: true, FullTimestamp: true}
	if env == "production" {
		formatter = &logrus.JSONFormatter{}
	}

	return &logrus.Logger{
		Out:       out,
		Formatter: formatter,
		Hooks:     make(logrus.LevelHooks),
		Level:     lvl,
	}
}

func InitLogger(env, level string) {
	Logger = NewLogger(env, level, os.Stdout)
}
