package events

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-ledger/internal/operator"
)

// fakeSource delivers its pending changes as soon as a client subscribes.
type fakeSource struct {
	revision     uint64
	pending      []operator.Change
	unsubscribed bool
}

func (f *fakeSource) Revision() uint64 { return f.revision }

func (f *fakeSource) Subscribe(fn func(operator.Change)) func() {
	for _, c := range f.pending {
		fn(c)
	}
	return func() { f.unsubscribed = true }
}

func newTestAPI(t *testing.T, src *fakeSource) humatest.TestAPI {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard
	_, api := humatest.New(t)
	NewHandler(src, logger).Register(api)
	return api
}

func TestStream_ReadyThenChanges(t *testing.T) {
	src := &fakeSource{
		revision: 3,
		pending: []operator.Change{
			{Revision: 4, Action: "*actions.CreateTransaction"},
			{Revision: 5, Action: "actions.EmptyTrash"},
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp := newTestAPI(t, src).GetCtx(ctx, "/v1/events")

	assert.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "event: ready\ndata: {\"revision\":3}")
	assert.Contains(t, body, "event: change\ndata: {\"revision\":4,\"action\":\"CreateTransaction\"}")
	assert.Contains(t, body, "event: change\ndata: {\"revision\":5,\"action\":\"EmptyTrash\"}")
	assert.Less(t, strings.Index(body, "ready"), strings.Index(body, "CreateTransaction"))
	assert.True(t, src.unsubscribed)
}

func TestToEvent(t *testing.T) {
	assert.Equal(t, ChangeEvent{Revision: 9, Action: "DeleteLabel"}, toEvent(operator.Change{Revision: 9, Action: "*actions.DeleteLabel"}))
}
