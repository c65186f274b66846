package update_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/service/tables"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidTableData   = "некорректные данные стола"
	msgEmptyUpdate        = "не передано ни одного поля для обновления"
	msgTableNotFound      = "стол не найден"
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

// Handle PATCH /api/tables/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Update(r.Context(), id, req.ToDomainUpdate())
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PATCH /tables/{id} - Table not found: table_id=%d", id)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, tables.ErrEmptyUpdate):
			h.logger.Warn("PATCH /tables/{id} - Empty update: table_id=%d", id)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("PATCH /tables/{id} - Invalid table data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableData)

		default:
			h.logger.Error("PATCH /tables/{id} - Failed to update table: table_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id} - Table updated: table_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(table))
}
