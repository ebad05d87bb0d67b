package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
)

// UpdateTransactionInput is the Huma input for replacing a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body TransactionBody
}

// UpdateTransactionHandler handles PUT /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionWriter
}

func NewUpdateTransactionHandler(svc transactionWriter) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "update-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transaction/{id}",
		Summary:       "Update transaction",
		Description:   "Replaces every field of an existing transaction.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*struct{}, error) {
	id, err := common.ParseID(input.ID)
	if err != nil {
		return nil, err
	}
	parsed, err := parseTransactionBody(input.Body, h.TransactionService.Location())
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.UpdateTransaction(ctx, id, parsed); err != nil {
		return nil, common.ToHTTPError("failed to update transaction", err)
	}
	return nil, nil
}
