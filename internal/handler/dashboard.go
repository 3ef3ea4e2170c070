package handler

import (
	"net/http"

	"github.com/josh-kwaku/invoice-dashboard/internal/auth"
	"github.com/josh-kwaku/invoice-dashboard/internal/money"
	"github.com/josh-kwaku/invoice-dashboard/internal/query"
)

type DashboardHandler struct {
	src  query.Source
	view presenter
}

func NewDashboardHandler(src query.Source, f *money.Formatter) *DashboardHandler {
	return &DashboardHandler{src: src, view: presenter{fmt: f}}
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, ok := load(w, r, query.NewDashboard(h.src), nil)
	if !ok {
		return
	}
	view := h.view.dashboard(d)
	view.User, _ = auth.UsernameFromContext(r.Context())
	RespondSuccess(w, http.StatusOK, view)
}
