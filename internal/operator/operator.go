package operator

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/money-tracker/internal/operator/actions"
	"github.com/carson-networks/money-tracker/internal/storage"
)

// CommitHook runs after an action's transaction commits and before the
// caller of Process is released.
type CommitHook func(ctx context.Context, change actions.Change)

// Operator is the worker that processes items from the queue.
type Operator struct {
	storage  *storage.Storage
	queue    chan ActionItem
	onCommit CommitHook
	logger   *logrus.Logger
}

func NewOperator(s *storage.Storage, queue chan ActionItem, onCommit CommitHook, logger *logrus.Logger) *Operator {
	return &Operator{
		storage:  s,
		queue:    queue,
		onCommit: onCommit,
		logger:   logger,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller gave up while the item was queued.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		o.logger.WithError(err).WithField("action", item.action.Change().Collection).
			Debug("Operator.processItem.rollback")
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		o.logger.WithError(err).Error("Operator.processItem.commit")
		item.response <- ActionItemResponse{err: err}
		return
	}

	if o.onCommit != nil {
		o.onCommit(context.WithoutCancel(item.ctx), item.action.Change())
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
