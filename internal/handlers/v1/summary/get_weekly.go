package summary

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
)

// AnchorInput carries the optional anchor shared by the weekly and monthly endpoints.
type AnchorInput struct {
	Anchor string `query:"anchor" doc:"RFC3339 timestamp or YYYY-MM-DD, defaults to now"`
}

// DayBucket is one day of the weekly series.
type DayBucket struct {
	Date    string `json:"date" doc:"YYYY-MM-DD"`
	Weekday string `json:"weekday"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// WeeklyResponseBody is the seven-day series around the anchor.
type WeeklyResponseBody struct {
	Days []DayBucket `json:"days" doc:"Sunday through Saturday"`
}

// WeeklyOutput is the Huma output for the weekly series.
type WeeklyOutput struct {
	Body WeeklyResponseBody
}

func (h *Handler) weekly(ctx context.Context, input *AnchorInput) (*WeeklyOutput, error) {
	anchor, err := h.anchorOrNow(input.Anchor)
	if err != nil {
		return nil, err
	}

	week := h.SummaryService.WeeklySeries(ctx, anchor)
	resp := WeeklyResponseBody{Days: make([]DayBucket, len(week))}
	for i, b := range week {
		resp.Days[i] = DayBucket{
			Date:    b.Date.Format(common.DateLayout),
			Weekday: b.Date.Weekday().String(),
			Income:  common.FormatAmount(b.Income),
			Expense: common.FormatAmount(b.Expense),
		}
	}

	return &WeeklyOutput{Body: resp}, nil
}
