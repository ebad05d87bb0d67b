package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/money-tracker/internal/ledger"
	"github.com/carson-networks/money-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string   `json:"id" doc:"Transaction UUID"`
	Type        string   `json:"type" doc:"income or expense"`
	Amount      string   `json:"amount" doc:"Amount with two decimal places; malformed stored amounts render as 0.00"`
	Description string   `json:"description" doc:"Free-text description"`
	Party       string   `json:"party,omitempty" doc:"Counterparty"`
	Tags        []string `json:"tags" doc:"Tag names"`
	Date        string   `json:"date,omitempty" doc:"RFC3339 effective date, absent when the record has none"`
	CreatedAt   string   `json:"createdAt,omitempty" doc:"RFC3339 creation time"`
	UpdatedAt   string   `json:"updatedAt,omitempty" doc:"RFC3339 last edit time"`
}

// TransactionBody is the request body shared by create and update.
type TransactionBody struct {
	Type        string   `json:"type" required:"true" enum:"income,expense" doc:"income or expense"`
	Amount      string   `json:"amount" required:"true" doc:"Non-negative decimal amount"`
	Description string   `json:"description" required:"true" minLength:"1" maxLength:"500" doc:"Free-text description"`
	Party       string   `json:"party,omitempty" maxLength:"200" doc:"Counterparty"`
	Tags        []string `json:"tags,omitempty" doc:"Tag names; new names are added to the tag list"`
	Date        string   `json:"date,omitempty" doc:"RFC3339 timestamp or YYYY-MM-DD; defaults to now on create and to the stored date on update"`
}

// transactionWriter is the interface for transaction intents.
type transactionWriter interface {
	CreateTransaction(ctx context.Context, input service.TransactionInput) (uuid.UUID, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, input service.TransactionInput) error
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	Location() *time.Location
}

func toResponse(t ledger.Transaction) Transaction {
	date, _ := t.EffectiveDate()
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return Transaction{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      common.FormatAmount(t.AmountValue()),
		Description: t.Description,
		Party:       t.Party,
		Tags:        tags,
		Date:        common.FormatTime(date),
		CreatedAt:   common.FormatTime(t.CreatedAt),
		UpdatedAt:   common.FormatTime(t.UpdatedAt),
	}
}

var errBlankDescription = errors.New("description must not be blank")

// parseTransactionBody validates fields Huma's schema cannot express.
func parseTransactionBody(body TransactionBody, loc *time.Location) (service.TransactionInput, error) {
	amount, err := common.ParseAmount(body.Amount)
	if err != nil {
		return service.TransactionInput{}, badRequest("invalid amount", err)
	}
	if strings.TrimSpace(body.Description) == "" {
		return service.TransactionInput{}, badRequest("invalid description", errBlankDescription)
	}
	date, err := common.ParseDate(body.Date, loc)
	if err != nil {
		return service.TransactionInput{}, badRequest("invalid date", err)
	}
	return service.TransactionInput{
		Type:        ledger.TransactionType(body.Type),
		Amount:      amount,
		Description: body.Description,
		Party:       body.Party,
		Tags:        body.Tags,
		Date:        date,
	}, nil
}
