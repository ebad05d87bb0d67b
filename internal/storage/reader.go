package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/money-tracker/internal/storage/sqlconfig"
)

// Reader groups the tables bound to one executor, either the database
// itself or an open transaction.
type Reader struct {
	Transactions sqlconfig.ITransactionTable
	Tags         sqlconfig.ITagTable
	Goals        sqlconfig.IGoalTable
	Preferences  sqlconfig.IPreferenceTable
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Tags:         sqlconfig.NewTagsTable(exec),
		Goals:        sqlconfig.NewGoalsTable(exec),
		Preferences:  sqlconfig.NewPreferencesTable(exec),
	}
}
