package storage

import (
	"context"

	"github.com/stephenafamo/bob"
)

// Writer exposes the tables inside a single database transaction.
type Writer struct {
	tx bob.Tx
	*Reader
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:     tx,
		Reader: NewReader(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
