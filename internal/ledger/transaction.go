package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// UncategorizedTag is the bucket for expenses without tags.
const UncategorizedTag = "Uncategorized"

// Transaction is a transaction record as delivered by the store.
// Amount is kept as the raw stored text; see AmountValue.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      string
	Description string
	Party       string
	Tags        []string
	Date        time.Time // zero when absent
	CreatedAt   time.Time // zero when absent
	UpdatedAt   time.Time // zero when never edited
}

// AmountValue parses the stored amount. Anything that is not a finite
// non-negative decimal counts as zero.
func (t Transaction) AmountValue() decimal.Decimal {
	amount, ok := ParseAmount(t.Amount)
	if !ok {
		return decimal.Zero
	}
	return amount
}

// EffectiveDate is Date when present, else CreatedAt. The second result is
// false when neither is set.
func (t Transaction) EffectiveDate() (time.Time, bool) {
	if !t.Date.IsZero() {
		return t.Date, true
	}
	if !t.CreatedAt.IsZero() {
		return t.CreatedAt, true
	}
	return time.Time{}, false
}

// HasTag reports whether tag is in the transaction's tag set.
func (t Transaction) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// ParseAmount parses a stored amount. It returns false for empty,
// unparsable or negative input.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if amount.IsNegative() {
		return decimal.Zero, false
	}
	return amount, true
}

// signedAmount is +amount for income, -amount for expense, zero otherwise.
func (t Transaction) signedAmount() decimal.Decimal {
	switch t.Type {
	case TypeIncome:
		return t.AmountValue()
	case TypeExpense:
		return t.AmountValue().Neg()
	default:
		return decimal.Zero
	}
}
