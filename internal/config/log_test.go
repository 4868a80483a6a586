package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		set   bool
		want  logrus.Level
	}{
		{name: "unset", want: logrus.InfoLevel},
		{name: "trace", value: "trace", set: true, want: logrus.TraceLevel},
		{name: "debug uppercase", value: "DEBUG", set: true, want: logrus.DebugLevel},
		{name: "padded", value: " warn ", set: true, want: logrus.WarnLevel},
		{name: "invalid", value: "chatty", set: true, want: logrus.InfoLevel},
		{name: "empty", value: "", set: true, want: logrus.InfoLevel},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(LogLevelEnv, test.value)
			if !test.set {
				os.Unsetenv(LogLevelEnv)
			}
			assert.Equal(t, test.want, LogLevel())
		})
	}
}
