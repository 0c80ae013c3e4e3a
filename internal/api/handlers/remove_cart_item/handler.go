package remove_cart_item

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/api/handlers/cartview"
	"github.com/agendei-app/agendei-service/internal/api/middleware"
)

type Handler struct {
	cart   CartStore
	logger Logger
}

func NewHandler(cart CartStore, logger Logger) *Handler {
	return &Handler{cart: cart, logger: logger}
}

// Handle DELETE /api/v1/cart/items/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	h.cart.Remove(sessionID, mux.Vars(r)["serviceId"])

	handlers.RespondJSON(w, http.StatusOK, cartview.FromLines(h.cart.Get(sessionID)))
}
