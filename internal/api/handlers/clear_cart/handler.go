package clear_cart

import (
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/middleware"
)

type Handler struct {
	cart   CartStore
	logger Logger
}

func NewHandler(cart CartStore, logger Logger) *Handler {
	return &Handler{cart: cart, logger: logger}
}

// Handle DELETE /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(middleware.SessionID(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}
