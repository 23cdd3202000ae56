package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { setup(os.Stderr, "info") })

	testCases := []struct {
		level    string
		expected logrus.Level
		warns    bool
	}{
		{level: "debug", expected: logrus.DebugLevel},
		{level: "WARN", expected: logrus.WarnLevel},
		{level: "", expected: logrus.InfoLevel, warns: true},
		{level: "loud", expected: logrus.InfoLevel, warns: true},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			setup(&buf, tc.level)
			assert.Equal(t, tc.expected, logrus.GetLevel())
			if tc.warns {
				assert.Contains(t, buf.String(), "unknown log level")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
