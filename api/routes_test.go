package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/summary"
	"github.com/carson-networks/money-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/live"
	"github.com/carson-networks/money-tracker/internal/operator"
	"github.com/carson-networks/money-tracker/internal/operator/actions"
	"github.com/carson-networks/money-tracker/internal/service"
	"github.com/carson-networks/money-tracker/internal/storage"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard

	store, err := storage.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)

	hub := live.NewHub()
	refresher := live.NewRefresher(store.Reader, hub, logger)
	require.NoError(t, refresher.Refresh(context.Background()))

	op := operator.NewOperatorDelegator(store, 1, func(ctx context.Context, _ actions.Change) {
		assert.NoError(t, refresher.Refresh(ctx))
	}, logger)
	op.Start()
	t.Cleanup(func() {
		op.Stop()
		_ = store.Close()
	})

	rest := &Rest{
		Logger:  logger,
		Service: service.NewService(store, hub, ledger.NewAggregator(time.UTC), op),
		Hub:     hub,
	}
	return rest.Router()
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_WritesAreVisibleToReads(t *testing.T) {
	h := newTestServer(t)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/status", nil).Code)

	for _, body := range []transaction.TransactionBody{
		{Type: "income", Amount: "100", Description: "salary", Date: "2024-01-05"},
		{Type: "expense", Amount: "40", Description: "groceries", Tags: []string{"food"}, Date: "2024-01-05"},
		{Type: "expense", Amount: "10", Description: "misc", Date: "2024-02-01"},
	} {
		require.Equal(t, http.StatusCreated, do(t, h, http.MethodPost, "/v1/transaction", body).Code)
	}

	resp := do(t, h, http.MethodGet, "/v1/summary", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var sum summary.SummaryResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	assert.Equal(t, "50.00", sum.Balance)
	assert.Equal(t, []summary.CategoryTotal{
		{Tag: "food", Amount: "40.00"},
		{Tag: "Uncategorized", Amount: "10.00"},
	}, sum.TopExpenseCategories)

	resp = do(t, h, http.MethodGet, "/v1/summary/monthly?anchor=2024-01-20", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var month summary.MonthlyResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&month))
	assert.Equal(t, "60.00", month.Savings)

	resp = do(t, h, http.MethodGet, "/v1/summary/calendar?year=2024&month=1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var cal summary.CalendarResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cal))
	assert.Equal(t, []int{5}, cal.Days)

	resp = do(t, h, http.MethodGet, "/v1/transaction?type=expense&sort=lowest", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list transaction.ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Transactions, 2)
	assert.Equal(t, "misc", list.Transactions[0].Description)

	resp = do(t, h, http.MethodGet, "/v1/tag", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"tags":["food"]}`, stripSchema(t, resp.Body.Bytes()))

	del := do(t, h, http.MethodDelete, "/v1/transaction/"+list.Transactions[1].ID, nil)
	assert.Equal(t, http.StatusNoContent, del.Code)
	resp = do(t, h, http.MethodGet, "/v1/summary", nil)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	assert.Equal(t, "90.00", sum.Balance)
}

func TestRouter_ThemeRoundTrip(t *testing.T) {
	h := newTestServer(t)

	assert.Contains(t, do(t, h, http.MethodGet, "/v1/preference/theme", nil).Body.String(), `"darkMode":false`)
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPut, "/v1/preference/theme", map[string]bool{"darkMode": true}).Code)
	assert.Contains(t, do(t, h, http.MethodGet, "/v1/preference/theme", nil).Body.String(), `"darkMode":true`)
}

// stripSchema drops the $schema link huma adds to JSON bodies.
func stripSchema(t *testing.T, raw []byte) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	delete(m, "$schema")
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}
