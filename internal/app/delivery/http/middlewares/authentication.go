package middlewares

import (
	"context"
	"fmt"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// Authenticate resolves the bearer token to its redis session and puts
// the session on the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(tokenString, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisKeySession, sessionID)
		sessionData, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		session := new(models.Session)
		err = json.Unmarshal([]byte(sessionData), session)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) RequirePatient(next http.Handler) http.Handler {
	return m.requireRole(constvars.RolePatient, next)
}

func (m *Middlewares) RequireDoctor(next http.Handler) http.Handler {
	return m.requireRole(constvars.RoleDoctor, next)
}

func (m *Middlewares) requireRole(role string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}
		if session.Role != role {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotResourceOwner(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
