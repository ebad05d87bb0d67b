package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/logging"
)

// ListTransactionsInput carries the filter and sort controls as query
// parameters. Empty values mean "no constraint".
type ListTransactionsInput struct {
	Type  string `query:"type" doc:"all, income or expense (default all)"`
	Tag   string `query:"tag" doc:"Only transactions carrying this tag"`
	Start string `query:"start" doc:"Inclusive start, RFC3339 or YYYY-MM-DD; compared from the start of that day"`
	End   string `query:"end" doc:"Inclusive end, RFC3339 or YYYY-MM-DD; compared to the end of that day"`
	Sort  string `query:"sort" doc:"newest, oldest, highest or lowest (default newest)"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Filtered and sorted transactions"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filters ledger.Filters, order ledger.SortOrder) []ledger.Transaction
	Location() *time.Location
}

// ListTransactionsHandler handles GET /v1/transaction.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns the transactions matching every active filter, in the requested order.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the query parameters.
func parseListTransactionsInput(input *ListTransactionsInput, loc *time.Location) (ledger.Filters, ledger.SortOrder, error) {
	typeFilter, err := ledger.ParseTypeFilter(input.Type)
	if err != nil {
		return ledger.Filters{}, "", huma.NewError(http.StatusBadRequest, "invalid type", err)
	}
	order, err := ledger.ParseSortOrder(input.Sort)
	if err != nil {
		return ledger.Filters{}, "", huma.NewError(http.StatusBadRequest, "invalid sort", err)
	}
	start, err := common.ParseDate(input.Start, loc)
	if err != nil {
		return ledger.Filters{}, "", huma.NewError(http.StatusBadRequest, "invalid start", err)
	}
	end, err := common.ParseDate(input.End, loc)
	if err != nil {
		return ledger.Filters{}, "", huma.NewError(http.StatusBadRequest, "invalid end", err)
	}

	return ledger.Filters{
		Type:      typeFilter,
		Tag:       input.Tag,
		DateRange: ledger.DateRange{Start: start, End: end},
	}, order, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filters, order, err := parseListTransactionsInput(input, h.TransactionService.Location())
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions := h.TransactionService.ListTransactions(ctx, filters, order)
	if stopTimer != nil {
		stopTimer()
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = toResponse(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
