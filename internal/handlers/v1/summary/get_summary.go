package summary

import (
	"context"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
)

// CategoryTotal is one row of the top expense categories.
type CategoryTotal struct {
	Tag    string `json:"tag" doc:"Tag name, or Uncategorized"`
	Amount string `json:"amount" doc:"Expense total attributed to the tag"`
}

// SummaryResponseBody is the response body for the balance and statistics.
type SummaryResponseBody struct {
	Balance              string          `json:"balance" doc:"Total income minus total expense"`
	TotalIncome          string          `json:"totalIncome"`
	TotalExpense         string          `json:"totalExpense"`
	TopExpenseCategories []CategoryTotal `json:"topExpenseCategories" doc:"At most five categories, largest first"`
}

// SummaryOutput is the Huma output for the summary endpoint.
type SummaryOutput struct {
	Body SummaryResponseBody
}

func (h *Handler) summary(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	summary := h.SummaryService.Summary(ctx)

	resp := SummaryResponseBody{
		Balance:              common.FormatAmount(summary.Balance),
		TotalIncome:          common.FormatAmount(summary.Statistics.TotalIncome),
		TotalExpense:         common.FormatAmount(summary.Statistics.TotalExpense),
		TopExpenseCategories: make([]CategoryTotal, len(summary.Statistics.TopExpenseCategories)),
	}
	for i, c := range summary.Statistics.TopExpenseCategories {
		resp.TopExpenseCategories[i] = CategoryTotal{Tag: c.Tag, Amount: common.FormatAmount(c.Amount)}
	}

	return &SummaryOutput{Body: resp}, nil
}
