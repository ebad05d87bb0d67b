package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/money-tracker/internal/live"
	"github.com/carson-networks/money-tracker/internal/logging"
)

// snapshotSource is satisfied by *live.Hub.
type snapshotSource interface {
	Latest() (live.Snapshot, bool)
}

type Handler struct {
	Snapshots snapshotSource
}

func NewHandler(snapshots snapshotSource) Handler {
	return Handler{Snapshots: snapshots}
}

type statusResponse struct {
	Status          string `json:"status"`
	SnapshotVersion uint64 `json:"snapshotVersion"`
}

// Handler answers 200 once the first snapshot has loaded and 503 before.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	snapshot, ok := h.Snapshots.Latest()
	logData.AddData("snapshotVersion", snapshot.Version)

	resp := statusResponse{Status: "ok", SnapshotVersion: snapshot.Version}
	code := http.StatusOK
	if !ok {
		resp.Status = "loading"
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(resp)
}
