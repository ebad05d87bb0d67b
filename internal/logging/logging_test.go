package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := SetupLogging(logrus.DebugLevel)
	logger.Out = buf
	return logger
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	entry := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLogging_RenamesLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	bufferLogger(buf).Info("hello")

	entry := lastEntry(t, buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.Equal(t, "hello", entry["msg"])
	assert.NotContains(t, entry, "level")
}

func TestLogData_CarriesFieldsAndTimings(t *testing.T) {
	buf := &bytes.Buffer{}
	logData := NewLogData(bufferLogger(buf))

	logData.AddData("count", 3)
	logData.AddTiming("loadMs")()
	stop := logData.AddToExistingTiming("loadMs")
	stop()
	logData.Log().Info("done")

	entry := lastEntry(t, buf)
	assert.Equal(t, float64(3), entry["count"])
	assert.Contains(t, entry, "loadMs")
}

func TestGetLogData_Context(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetLogData(req.Context()))

	logData := NewLogData(logrus.New())
	ctx := WithLogData(req.Context(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLoggingWrapper_LogsHandlerError(t *testing.T) {
	buf := &bytes.Buffer{}
	handler := LoggingWrapper("Broken", bufferLogger(buf), func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("nope")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	entry := lastEntry(t, buf)
	assert.Equal(t, "Handler.Broken.Error", entry["msg"])
	assert.Equal(t, "nope", entry["error"])
}

func TestRequestLogger_SharesLogDataWithHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	next := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		GetLogData(req.Context()).AddData("rows", 7)
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	RequestLogger(bufferLogger(buf))(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/summary", nil))

	entry := lastEntry(t, buf)
	assert.Equal(t, "HttpServer.Request.Complete", entry["msg"])
	assert.Equal(t, "/v1/summary", entry["path"])
	assert.Equal(t, float64(http.StatusTeapot), entry["status"])
	assert.Equal(t, float64(7), entry["rows"])
}
