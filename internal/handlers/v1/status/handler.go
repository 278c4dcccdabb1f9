package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/finance-ledger/internal/logging"
)

// revisioner reports how many mutations the ledger has committed.
type revisioner interface {
	Revision() uint64
}

type Handler struct {
	Operator revisioner
}

func NewHandler(op revisioner) Handler {
	return Handler{Operator: op}
}

type statusBody struct {
	Status   string `json:"status"`
	Revision uint64 `json:"revision"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	body := statusBody{Status: "ok"}
	if h.Operator != nil {
		body.Revision = h.Operator.Revision()
	}
	logData.AddData("revision", body.Revision)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}
