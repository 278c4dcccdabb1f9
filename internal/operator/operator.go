package operator

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
)

// Persister saves committed snapshots. storage.Storage satisfies it.
type Persister interface {
	Save(ctx context.Context, state *ledger.State) error
}

// Change describes one committed mutation.
type Change struct {
	Revision uint64
	Action   string
	State    *ledger.State
}

// Operator is the worker that processes items from the queue. It is the only
// writer of the current snapshot.
type Operator struct {
	state     *atomic.Pointer[ledger.State]
	revision  *atomic.Uint64
	persister Persister
	env       ledger.Env
	logger    *logrus.Logger
	queue     chan ActionItem
	onCommit  func(Change)
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	actionName := fmt.Sprintf("%T", item.action)
	log := o.logger.WithField("action", actionName)

	// The caller already gave up, so the mutation must not happen either.
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	current := o.state.Load()
	next, err := item.action.Perform(item.ctx, current, o.env)
	if err != nil {
		log.WithError(err).Debug("Operator.processItem.rejected")
		item.response <- ActionItemResponse{err: err}
		return
	}
	if next == nil || next == current {
		item.response <- ActionItemResponse{}
		return
	}

	o.state.Store(next)
	revision := o.revision.Add(1)

	start := time.Now()
	if err := o.persister.Save(context.WithoutCancel(item.ctx), next); err != nil {
		log.WithError(err).WithField("revision", revision).Error("Operator.processItem.persist failed")
	} else {
		log.WithFields(logrus.Fields{
			"revision":  revision,
			"persistMs": time.Since(start).Milliseconds(),
		}).Debug("Operator.processItem.persisted")
	}

	o.onCommit(Change{Revision: revision, Action: actionName, State: next})
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
