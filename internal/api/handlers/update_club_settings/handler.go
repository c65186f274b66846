package update_club_settings

import (
	"errors"
	"net/http"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/service/settings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidSettings    = "некорректные настройки клуба"
	msgEmptyUpdate        = "не передано ни одного поля для обновления"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/club-settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateClubSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /club-settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	update, err := req.ToDomainUpdate()
	if err != nil {
		h.logger.Warn("PATCH /club-settings - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	updated, err := h.service.UpdateSettings(r.Context(), update)
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrEmptyUpdate):
			h.logger.Warn("PATCH /club-settings - Empty update")
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PATCH /club-settings - Invalid settings: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PATCH /club-settings - Failed to update settings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /club-settings - Settings updated: id=%d", updated.ID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(updated))
}
