package get_user_reservations

import (
	"errors"
	"net/http"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/api/middleware"
	"github.com/bclub/TableReservationService/internal/service/reservations"
)

const (
	msgNotAuthenticated = "пользователь не аутентифицирован"
	msgAdminOnly        = "просмотр всех бронирований доступен только администратору"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/reservations
// Параметр ?all=true доступен только администратору и возвращает
// бронирования всех пользователей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	all := r.URL.Query().Get("all") == "true"

	result, err := h.service.List(r.Context(), user, all)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /reservations - Access denied: user_id=%d, all=%t", user.ID, all)
			handlers.RespondForbidden(w, msgAdminOnly)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: user_id=%d, error=%v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
