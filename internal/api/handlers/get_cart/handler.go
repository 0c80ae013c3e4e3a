package get_cart

import (
	"net/http"

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

// Handle GET /api/v1/cart
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r.Context())
	handlers.RespondJSON(w, http.StatusOK, cartview.FromLines(h.cart.Get(sessionID)))
}
