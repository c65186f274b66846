package create_table

import (
	"errors"
	"net/http"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/internal/service/tables"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTableData   = "некорректные данные стола"
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

// Handle POST /api/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	table, err := h.service.Create(r.Context(), req.Number, domain.TableStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid table data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableData)

		default:
			h.logger.Error("POST /tables - Failed to create table: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created: table_id=%d, number=%d", table.ID, table.Number)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(table))
}
