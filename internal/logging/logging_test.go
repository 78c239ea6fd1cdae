package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger() (*logrus.Logger, *bytes.Buffer) {
	logger := SetupLogging("debug")
	buf := &bytes.Buffer{}
	logger.Out = buf
	return logger, buf
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, SetupLogging("debug").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("nonsense").Level)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, buf := newBufferedLogger()
	logData := NewLogData(logger)

	logData.AddData("budgetMonth", "2025-06")
	stop := logData.AddTiming("upsertBudgetMs")
	stop()
	logData.Log().Info("done")

	entry := lastLine(t, buf)
	assert.Equal(t, "2025-06", entry["budgetMonth"])
	assert.Contains(t, entry, "upsertBudgetMs")
	assert.Equal(t, "info", entry["loglevel"])
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(logrus.New())
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestTimed_WithoutLogData(t *testing.T) {
	v, err := Timed(nil, "x", func() (int, error) { return 3, nil })
	assert.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestLoggingWrapper_Complete(t *testing.T) {
	logger, buf := newBufferedLogger()
	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.Status.Complete", entry["msg"])
	assert.NotEmpty(t, entry["requestID"])
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, buf := newBufferedLogger()
	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/status", nil))

	entry := lastLine(t, buf)
	assert.Equal(t, "Handler.Status.Error", entry["msg"])
	assert.Equal(t, "error", entry["loglevel"])
	assert.Equal(t, "status: method not GET", entry["error"])
}
