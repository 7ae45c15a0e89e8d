package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/thevanityindia/vanity-server/internal/logger"
	"github.com/thevanityindia/vanity-server/internal/model"
)

// TokenService resolves user ID from bearer tokens.
type TokenService interface {
	GetUserID(ctx context.Context, token string) (uuid.UUID, error)
}

// UserStore loads users for role checks.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

// ErrorWriter writes an error onto the response envelope.
type ErrorWriter func(w http.ResponseWriter, err error)

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokenService   TokenService
	userStore      UserStore
	contextManager model.ContextManager
	writeError     ErrorWriter
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(
	tokenService TokenService,
	userStore UserStore,
	contextManager model.ContextManager,
	writeError ErrorWriter,
	logger *logger.Logger,
) *Authenticate {
	return &Authenticate{
		tokenService:   tokenService,
		userStore:      userStore,
		contextManager: contextManager,
		writeError:     writeError,
		logger:         logger,
	}
}

// Handler parses the Authorization header, validates the token and calls
// the next handler with the user ID in context.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r)

		userID, err := m.authenticateUser(r.Context(), tokenString)
		if err != nil {
			m.writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(m.contextManager.SetUserIDToContext(r.Context(), userID)))
	})
}

// RequireAdmin allows only users with the admin role through. It must be
// mounted inside Handler so the user ID is already in context.
func (m *Authenticate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.contextManager.GetUserIDFromContext(r.Context())
		if !ok {
			m.writeError(w, model.NewErrMissingAuthorizationToken())
			return
		}

		user, err := m.userStore.GetByID(r.Context(), userID)
		if err != nil || user.Role != model.RoleAdmin {
			m.logger.Info("admin access denied",
				"user_id", userID,
				"path", r.URL.Path)
			m.writeError(w, model.NewErrAdminOnly())
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Authenticate) authenticateUser(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, model.NewErrMissingAuthorizationToken()
	}

	userID, err := m.tokenService.GetUserID(ctx, tokenString)
	if err != nil {
		return uuid.Nil, model.NewErrInvalidAuthorizationToken()
	}

	if userID == uuid.Nil {
		return uuid.Nil, model.NewErrInvalidAuthorizationToken()
	}

	return userID, nil
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}
