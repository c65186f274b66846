package create_reservation

import (
	"errors"
	"net/http"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/api/middleware"
	createReservation "github.com/bclub/TableReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgNotAuthenticated   = "пользователь не аутентифицирован"
	msgInvalidReservation = "некорректные данные бронирования"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgTableNotFound      = "стол не найден"
	msgTableUnavailable   = "стол недоступен для бронирования"
	msgSlotAlreadyBooked  = "выбранное время уже занято"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotAuthenticated)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(user.ID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createReservation.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /reservations - Slot conflict: user_id=%d, table_id=%d, date=%s, conflict_id=%d",
				user.ID, req.TableID, req.Date, conflictErr.Conflict.ID)
			handlers.RespondJSON(w, http.StatusBadRequest, ConflictResponse{
				Message:  msgSlotAlreadyBooked,
				Conflict: FromDomainReservation(conflictErr.Conflict),
			})

		case errors.Is(err, createReservation.ErrTableNotFound):
			h.logger.Warn("POST /reservations - Table not found: table_id=%d", req.TableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createReservation.ErrTableUnavailable):
			h.logger.Warn("POST /reservations - Table unavailable: table_id=%d", req.TableID)
			handlers.RespondBadRequest(w, msgTableUnavailable)

		case errors.Is(err, createReservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: user_id=%d", user.ID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservation)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, table_id=%d, error=%v",
				user.ID, req.TableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: reservation_id=%d, user_id=%d, table_id=%d",
		result.ID, user.ID, req.TableID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
