package delete_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/service/tables"
)

const (
	msgInvalidTableID = "некорректный ID стола"
	msgTableNotFound  = "стол не найден"
)

type Handler struct {
	service TablesService
	logger  Logger
}

func NewHandler(service TablesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/tables/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("DELETE /tables/{id} - Table not found: table_id=%d", id)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("DELETE /tables/{id} - Invalid table ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableID)

		default:
			h.logger.Error("DELETE /tables/{id} - Failed to delete table: table_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tables/{id} - Table deleted: table_id=%d", id)
	handlers.RespondNoContent(w)
}
