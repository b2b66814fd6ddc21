package middlewares

import (
	"carelink-service/internal/pkg/constvars"
	"carelink-service/internal/pkg/exceptions"
	"carelink-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Authenticate verifies the Bearer token and resolves it to a live Redis
// session. The session lands in the request context under
// constvars.ContextSessionDataKey; handlers never touch the token directly.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("missing %s header", constvars.HeaderAuthorization)))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(fmt.Errorf("session %s not found or expired", sessionID)))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionDataKey, session)
		ctx = context.WithValue(ctx, constvars.ContextSessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
