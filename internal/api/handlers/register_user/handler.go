package register_user

import (
	"errors"
	"net/http"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserData    = "не заполнены обязательные поля пользователя"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/users
// Регистрация идемпотентна: для известного telegram_id возвращается
// существующий пользователь со статусом 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, created, err := h.service.Register(r.Context(), &users.RegisterRequest{
		TelegramID: req.TelegramID,
		Name:       req.Name,
		Phone:      req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid user data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidUserData)

		default:
			h.logger.Error("POST /users - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	h.logger.Info("POST /users - Registered: user_id=%d, telegram_id=%s, created=%t",
		user.ID, user.TelegramID, created)
	handlers.RespondJSON(w, status, FromDomain(user))
}
