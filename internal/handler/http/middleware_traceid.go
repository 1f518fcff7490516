package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the per-request correlation id. A client-supplied
// value is honored; otherwise a fresh UUID is generated. The id is echoed on
// the response either way.
const traceIDHeader = "X-Trace-ID"

// withTraceID scopes a child logger tagged with the trace id into the
// request context, so every log line emitted for the request, down to the
// repositories logging via logger.FromContext, shares one correlation id.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.GetChildLogger()
		requestLogger.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(requestLogger.WithContext(r.Context())))
	})
}
