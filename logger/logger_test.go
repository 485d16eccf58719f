package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	defer func() {
		SetOutput(os.Stderr)
		Log.SetLevel(logrus.InfoLevel)
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}()

	require.NoError(t, Configure("debug", true))
	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())

	var buf bytes.Buffer
	SetOutput(&buf)
	For("navigation").Debug("hello")
	assert.Contains(t, buf.String(), `"component":"navigation"`)

	assert.Error(t, Configure("loud", false))
}
