package get_me

import (
	"net/http"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/api/middleware"
)

const msgNotAuthenticated = "пользователь не аутентифицирован"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/users/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /users/me - no authenticated user in context")
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(user))
}
