package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/bclub/TableReservationService/internal/api/handlers"
	"github.com/bclub/TableReservationService/internal/domain"
	"github.com/bclub/TableReservationService/internal/service/users"
)

// HeaderTelegramID заголовок с Telegram-идентификатором пользователя
const HeaderTelegramID = "X-Telegram-ID"

const (
	msgMissingTelegramID = "отсутствует заголовок X-Telegram-ID"
	msgUserNotRegistered = "пользователь не зарегистрирован"
	msgAdminOnly         = "требуются права администратора"
)

type contextKey string

const userContextKey contextKey = "authenticated_user"

// Auth аутентифицирует запросы по заголовку X-Telegram-ID
type Auth struct {
	userProvider UserProvider
	logger       Logger
}

// NewAuth создает middleware аутентификации
func NewAuth(userProvider UserProvider, logger Logger) *Auth {
	return &Auth{
		userProvider: userProvider,
		logger:       logger,
	}
}

// Identify резолвит заголовок X-Telegram-ID в зарегистрированного
// пользователя и кладет его в контекст запроса
func (a *Auth) Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		telegramID := r.Header.Get(HeaderTelegramID)
		if telegramID == "" {
			a.logger.Warn("%s %s - missing %s header", r.Method, r.URL.Path, HeaderTelegramID)
			handlers.RespondUnauthorized(w, msgMissingTelegramID)
			return
		}

		user, err := a.userProvider.GetByTelegramID(r.Context(), telegramID)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				a.logger.Warn("%s %s - unknown telegram_id=%s", r.Method, r.URL.Path, telegramID)
				handlers.RespondUnauthorized(w, msgUserNotRegistered)
				return
			}
			a.logger.Error("%s %s - failed to resolve telegram_id=%s: %v", r.Method, r.URL.Path, telegramID, err)
			handlers.RespondInternalError(w)
			return
		}

		ctx := context.WithValue(r.Context(), userContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только администраторов.
// Должен стоять после Identify
func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingTelegramID)
			return
		}
		if !user.IsAdmin {
			a.logger.Warn("%s %s - user id=%d is not an admin", r.Method, r.URL.Path, user.ID)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext достает аутентифицированного пользователя из контекста
func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(userContextKey).(*domain.User)
	return user, ok
}
