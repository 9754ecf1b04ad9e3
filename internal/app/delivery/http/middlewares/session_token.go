package middlewares

import (
	"context"
	"errors"
	"net/http"

	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RequireSessionToken admits a request only when its bearer token was issued
// for the session named in the URL.
func (m *Middlewares) RequireSessionToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := utils.BearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseSessionJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if urlSessionID := chi.URLParam(r, constvars.URLParamSessionID); urlSessionID != sessionID {
			m.Log.Warn("Session token used for another session",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingSessionIDKey, urlSessionID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenSessionMismatch(errors.New("session id mismatch")))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
