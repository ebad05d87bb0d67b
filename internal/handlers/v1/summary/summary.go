package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/service"
)

// summaryService is the read side the summary endpoints need.
type summaryService interface {
	Summary(ctx context.Context) service.Summary
	CalendarMarkers(ctx context.Context, year int, month time.Month) []int
	WeeklySeries(ctx context.Context, anchor time.Time) [7]ledger.DayBucket
	MonthlySummary(ctx context.Context, anchor time.Time) ledger.MonthlySummary
	Location() *time.Location
}

// Handler serves the dashboard aggregates under /v1/summary.
type Handler struct {
	SummaryService summaryService
	now            func() time.Time
}

// NewHandler builds a Handler that reads the current time from time.Now.
func NewHandler(svc summaryService) *Handler {
	return &Handler{SummaryService: svc, now: time.Now}
}

// Register adds the summary operations to api.
func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Balance and statistics",
		Description: "Returns the balance, income and expense totals and the top expense categories.",
		Tags:        []string{"Summary"},
	}, h.summary)

	huma.Register(api, huma.Operation{
		OperationID: "get-calendar-markers",
		Method:      http.MethodGet,
		Path:        "/v1/summary/calendar",
		Summary:     "Calendar markers",
		Description: "Returns the days of a month that have at least one transaction.",
		Tags:        []string{"Summary"},
	}, h.calendar)

	huma.Register(api, huma.Operation{
		OperationID: "get-weekly-series",
		Method:      http.MethodGet,
		Path:        "/v1/summary/weekly",
		Summary:     "Weekly series",
		Description: "Returns income and expense per day for the Sunday-to-Saturday week containing the anchor.",
		Tags:        []string{"Summary"},
	}, h.weekly)

	huma.Register(api, huma.Operation{
		OperationID: "get-monthly-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary/monthly",
		Summary:     "Monthly summary",
		Description: "Returns income, expense and savings for the month containing the anchor.",
		Tags:        []string{"Summary"},
	}, h.monthly)
}

// anchorOrNow parses an optional anchor, defaulting to the current time.
func (h *Handler) anchorOrNow(raw string) (time.Time, error) {
	if raw == "" {
		return h.now().In(h.SummaryService.Location()), nil
	}
	anchor, err := common.ParseDate(raw, h.SummaryService.Location())
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid anchor", err)
	}
	return anchor, nil
}
