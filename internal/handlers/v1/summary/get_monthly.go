package summary

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
)

// MonthlyResponseBody is the income, expense and savings of one month.
type MonthlyResponseBody struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Savings string `json:"savings" doc:"Income minus expense, never below zero"`
}

// MonthlyOutput is the Huma output for the monthly summary.
type MonthlyOutput struct {
	Body MonthlyResponseBody
}

func (h *Handler) monthly(ctx context.Context, input *AnchorInput) (*MonthlyOutput, error) {
	anchor, err := h.anchorOrNow(input.Anchor)
	if err != nil {
		return nil, err
	}

	m := h.SummaryService.MonthlySummary(ctx, anchor)
	return &MonthlyOutput{Body: MonthlyResponseBody{
		Year:    m.Year,
		Month:   int(m.Month),
		Income:  common.FormatAmount(m.Income),
		Expense: common.FormatAmount(m.Expense),
		Savings: common.FormatAmount(m.Savings),
	}}, nil
}
