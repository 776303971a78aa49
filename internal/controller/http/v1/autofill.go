package v1

import (
	"log/slog"
	"net/http"
)

type AutofillHandler struct {
	log     *slog.Logger
	planner AutoFiller
}

func NewAutofillHandler(log *slog.Logger, planner AutoFiller) *AutofillHandler {
	return &AutofillHandler{
		log:     log,
		planner: planner,
	}
}

func (h *AutofillHandler) Run(w http.ResponseWriter, r *http.Request) {
	result, err := h.planner.Run(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
