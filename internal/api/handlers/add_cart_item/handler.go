package add_cart_item

import (
	"net/http"

	"github.com/agendei-app/agendei-service/internal/api/handlers"
	"github.com/agendei-app/agendei-service/internal/api/handlers/cartview"
	"github.com/agendei-app/agendei-service/internal/api/middleware"
)

const (
	msgInvalidBody    = "corpo da requisição inválido"
	msgMissingService = "informe o serviço a adicionar"
	msgUnknownService = "serviço não encontrado no catálogo"
)

type Handler struct {
	cart     CartStore
	settings SettingsProvider
	logger   Logger
}

func NewHandler(cart CartStore, settings SettingsProvider, logger Logger) *Handler {
	return &Handler{cart: cart, settings: settings, logger: logger}
}

// Handle POST /api/v1/cart/items
// The item is resolved against the current catalog so a stale client cannot
// book a renamed or repriced service.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cart/items - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	if req.ServiceID == "" {
		handlers.RespondBadRequest(w, msgMissingService)
		return
	}

	cfg := h.settings.Get()
	item := cfg.ServiceByID(req.ServiceID)
	if item == nil {
		h.logger.Warn("POST /cart/items - Unknown service %q", req.ServiceID)
		handlers.RespondNotFound(w, msgUnknownService)
		return
	}

	sessionID := middleware.SessionID(r.Context())
	h.cart.Add(sessionID, *item)

	handlers.RespondJSON(w, http.StatusOK, cartview.FromLines(h.cart.Get(sessionID)))
}
