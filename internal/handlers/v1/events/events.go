// Package events streams ledger changes to clients as server-sent events.
package events

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/sse"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-ledger/internal/operator"
)

// bufferSize bounds the changes queued for one slow client. Later changes are
// dropped; the client can resync from the revision in the next event.
const bufferSize = 64

// ReadyEvent is sent once on connect.
type ReadyEvent struct {
	Revision uint64 `json:"revision" doc:"Current ledger revision"`
}

// ChangeEvent is sent after every committed mutation.
type ChangeEvent struct {
	Revision uint64 `json:"revision" doc:"Revision produced by the mutation"`
	Action   string `json:"action" doc:"Name of the action that was applied"`
}

type changeSource interface {
	Revision() uint64
	Subscribe(fn func(operator.Change)) func()
}

type Handler struct {
	Operator changeSource
	Logger   *logrus.Logger
}

func NewHandler(op changeSource, logger *logrus.Logger) *Handler {
	return &Handler{Operator: op, Logger: logger}
}

func (h *Handler) Register(api huma.API) {
	sse.Register(api, huma.Operation{
		OperationID: "ledger-events",
		Method:      http.MethodGet,
		Path:        "/v1/events",
		Summary:     "Ledger change stream",
		Description: "Emits a ready event with the current revision, then one change event per committed mutation.",
		Tags:        []string{"Events"},
	}, map[string]any{
		"ready":  ReadyEvent{},
		"change": ChangeEvent{},
	}, h.stream)
}

func (h *Handler) stream(ctx context.Context, _ *struct{}, send sse.Sender) {
	changes := make(chan operator.Change, bufferSize)
	unsubscribe := h.Operator.Subscribe(func(c operator.Change) {
		select {
		case changes <- c:
		default:
			h.Logger.WithField("revision", c.Revision).Warn("Events.stream.dropped")
		}
	})
	defer unsubscribe()

	if err := send.Data(ReadyEvent{Revision: h.Operator.Revision()}); err != nil {
		return
	}

	for {
		// Queued changes go out before a disconnect is noticed.
		select {
		case c := <-changes:
			if err := send.Data(toEvent(c)); err != nil {
				return
			}
			continue
		default:
		}

		select {
		case <-ctx.Done():
			return
		case c := <-changes:
			if err := send.Data(toEvent(c)); err != nil {
				return
			}
		}
	}
}

func toEvent(c operator.Change) ChangeEvent {
	action := strings.TrimPrefix(c.Action, "*")
	action = strings.TrimPrefix(action, "actions.")
	return ChangeEvent{Revision: c.Revision, Action: action}
}
