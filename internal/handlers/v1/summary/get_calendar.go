package summary

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// CalendarInput selects the month to mark.
type CalendarInput struct {
	Year  int `query:"year" doc:"Calendar year, defaults to the current year"`
	Month int `query:"month" doc:"Month 1-12, defaults to the current month"`
}

// CalendarResponseBody lists the marked days of one month.
type CalendarResponseBody struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []int `json:"days" doc:"Days of the month with at least one transaction, ascending"`
}

// CalendarOutput is the Huma output for calendar markers.
type CalendarOutput struct {
	Body CalendarResponseBody
}

func (h *Handler) calendar(ctx context.Context, input *CalendarInput) (*CalendarOutput, error) {
	now := h.now().In(h.SummaryService.Location())
	year, month := input.Year, time.Month(input.Month)
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	if year < 1 || month < time.January || month > time.December {
		return nil, huma.NewError(http.StatusBadRequest, "invalid year or month")
	}

	days := h.SummaryService.CalendarMarkers(ctx, year, month)
	if days == nil {
		days = []int{}
	}

	return &CalendarOutput{Body: CalendarResponseBody{Year: year, Month: int(month), Days: days}}, nil
}
