package update_cart_item

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/api/handlers/cartview"
	"github.com/agendei-app/agendei-service/internal/api/middleware"
)

const (
	msgInvalidBody = "corpo da requisição inválido"
	msgInvalidOp   = "operação inválida, use increase ou decrease"
)

type Handler struct {
	cart   CartStore
	logger Logger
}

func NewHandler(cart CartStore, logger Logger) *Handler {
	return &Handler{cart: cart, logger: logger}
}

// Handle PATCH /api/v1/cart/items/{serviceId}
// Decreasing a line with quantity 1 removes it; unknown lines are no-ops.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cart/items - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	sessionID := middleware.SessionID(r.Context())
	itemID := mux.Vars(r)["serviceId"]

	switch req.Op {
	case OpIncrease:
		h.cart.Increase(sessionID, itemID)
	case OpDecrease:
		h.cart.Decrease(sessionID, itemID)
	default:
		handlers.RespondBadRequest(w, msgInvalidOp)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cartview.FromLines(h.cart.Get(sessionID)))
}
