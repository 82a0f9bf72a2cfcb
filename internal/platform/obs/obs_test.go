package obs

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure(t *testing.T) {
	require.NoError(t, Configure("debug", "json"))
	assert.Equal(t, logrus.DebugLevel, Logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, Logger.Formatter)

	assert.Error(t, Configure("loud", "json"))
	assert.Error(t, Configure("info", "xml"))
}

func TestTimeLogsFailure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure("debug", "text"))
	Logger.SetOutput(&buf)

	ctx := WithRequestID(context.Background(), "abc123")
	err := errors.New("boom")
	Time(ctx, "test.op")(&err)

	out := buf.String()
	assert.Contains(t, out, "req_id=abc123")
	assert.Contains(t, out, "op=test.op")
	assert.Contains(t, out, "boom")
}
