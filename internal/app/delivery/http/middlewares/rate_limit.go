package middlewares

import (
	"errors"
	"net/http"
	"time"

	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// RateLimit allows MaxRequests per second per client IP and answers the rest
// with the usual error envelope.
func (m *Middlewares) RateLimit() func(next http.Handler) http.Handler {
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errors.New("rate limit exceeded")))
		}),
	)
}
