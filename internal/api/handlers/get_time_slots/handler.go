package get_time_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	getTimeSlots "github.com/bclub/TableReservationService/internal/usecase/get_time_slots"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetTimeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/time-slots/{date}/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getTimeSlots.Request{
		Date:    vars["date"],
		TableID: tableID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /time-slots - Invalid request: date=%s, table_id=%d", vars["date"], tableID)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /time-slots - Failed to get slots: date=%s, table_id=%d, error=%v",
				vars["date"], tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
