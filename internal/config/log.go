package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const LogLevelEnv = "ORDERED_SETS_LOG_LEVEL"

// LogLevel returns the level named by ORDERED_SETS_LOG_LEVEL, or
// logrus.InfoLevel when the variable is unset or names no level.
func LogLevel() logrus.Level {
	name, ok := os.LookupEnv(LogLevelEnv)
	if !ok {
		return logrus.InfoLevel
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
