package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/ledger"
	"github.com/carson-networks/finance-ledger/internal/operator/actions"
)

var ErrStopped = errors.New("operator: stopped")

// OperatorDelegator manages the queue, starts/stops the Operator and
// enqueues items. A single Operator drains the queue, so every mutation runs
// to completion, persistence included, before the next one starts.
type OperatorDelegator struct {
	state    atomic.Pointer[ledger.State]
	revision atomic.Uint64
	queue    chan ActionItem
	operator *Operator
	wg       sync.WaitGroup
	stopOnce sync.Once

	// stopMu keeps Process from sending on a closed queue.
	stopMu  sync.RWMutex
	stopped bool

	subsMu  sync.RWMutex
	subs    map[int]func(Change)
	nextSub int
}

func NewOperatorDelegator(initial *ledger.State, persister Persister, env ledger.Env, logger *logrus.Logger) *OperatorDelegator {
	d := &OperatorDelegator{
		queue: make(chan ActionItem, 1000),
		subs:  make(map[int]func(Change)),
	}
	d.state.Store(initial)
	d.operator = &Operator{
		state:     &d.state,
		revision:  &d.revision,
		persister: persister,
		env:       env,
		logger:    logger,
		queue:     d.queue,
		onCommit:  d.notify,
	}
	return d
}

func (d *OperatorDelegator) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.operator.Run()
	}()
}

// Stop drains the queue and waits for the worker to exit.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stopMu.Lock()
		d.stopped = true
		close(d.queue)
		d.stopMu.Unlock()
		d.wg.Wait()
	})
}

// Process queues the action and waits until it is committed or rejected.
// ctx bounds the wait for a queue slot. Once queued, the item is always
// answered: the worker rejects it with ctx's error if ctx is done by the
// time it is dequeued, and otherwise commits it. A nil return therefore
// means the mutation landed, and an error means it did not.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	resp := <-respCh
	return resp.err
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stopMu.RLock()
	defer d.stopMu.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current state. It must not be modified.
func (d *OperatorDelegator) Snapshot() *ledger.State {
	return d.state.Load()
}

// Revision counts the commits since start.
func (d *OperatorDelegator) Revision() uint64 {
	return d.revision.Load()
}

// Subscribe registers fn to be called after every commit, from the worker
// goroutine. fn must not block. The returned func unregisters it.
func (d *OperatorDelegator) Subscribe(fn func(Change)) func() {
	d.subsMu.Lock()
	id := d.nextSub
	d.nextSub++
	d.subs[id] = fn
	d.subsMu.Unlock()

	return func() {
		d.subsMu.Lock()
		delete(d.subs, id)
		d.subsMu.Unlock()
	}
}

func (d *OperatorDelegator) notify(change Change) {
	d.subsMu.RLock()
	defer d.subsMu.RUnlock()
	for _, fn := range d.subs {
		fn(change)
	}
}
