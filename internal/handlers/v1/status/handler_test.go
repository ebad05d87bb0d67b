package status

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-tracker/internal/live"
	"github.com/carson-networks/money-tracker/internal/logging"
)

func createTestLogData() *logging.LogData {
	logger := logging.SetupLogging(logrus.InfoLevel)
	logger.Out = io.Discard
	return logging.NewLogData(logger)
}

func TestHandler_GoodMethod(t *testing.T) {
	hub := live.NewHub()
	hub.Publish(live.Snapshot{Version: 4})
	statusHandler := NewHandler(hub)
	req := httptest.NewRequest(http.MethodGet, "/status", nil)

	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.NoError(t, err)

	res := w.Result()
	assert.Equal(t, 200, res.StatusCode)
	var body statusResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, statusResponse{Status: "ok", SnapshotVersion: 4}, body)
}

func TestHandler_BeforeFirstSnapshot(t *testing.T) {
	statusHandler := NewHandler(live.NewHub())
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, httptest.NewRequest(http.MethodGet, "/status", nil), createTestLogData())
	assert.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, w.Result().StatusCode)
}

func TestHandler_BadMethod(t *testing.T) {
	statusHandler := NewHandler(live.NewHub())
	req := httptest.NewRequest(http.MethodPost, "/status", nil)
	w := httptest.NewRecorder()

	err := statusHandler.Handler(w, req, createTestLogData())
	assert.Error(t, err)

	res := w.Result()
	assert.Equal(t, 400, res.StatusCode)
}
