package pkgrouter

import (
	"net/http"
	"strings"

	"github.com/shandysiswandi/datasweeper/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation/request IDs).
type Generator interface {
	Generate() string
}

const (
	// HeaderCorrelationID is the canonical header used to track requests end-to-end.
	HeaderCorrelationID = "X-Correlation-ID"
	// HeaderRequestID is an accepted alternative header name used by some proxies.
	HeaderRequestID = "X-Request-ID"

	// ParamSessionID is the route parameter tagged onto request logs.
	ParamSessionID = "session_id"

	maxIDLen = 128
)

func normalizeID(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.ContainsAny(v, "\r\n") {
		return ""
	}
	if len(v) > maxIDLen {
		v = v[:maxIDLen]
	}
	return v
}

// middlewareRequestContext stores the correlation ID, taken from the request
// headers or generated, and the session route parameter in the request context.
func middlewareRequestContext(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cid := normalizeID(r.Header.Get(HeaderCorrelationID))
			if cid == "" {
				cid = normalizeID(r.Header.Get(HeaderRequestID))
			}
			if cid == "" && uid != nil {
				cid = uid.Generate()
			}
			if cid != "" {
				w.Header().Set(HeaderCorrelationID, cid)
				ctx = pkglog.SetCorrelationID(ctx, cid)
			}

			if sid := normalizeID(GetParam(ctx, ParamSessionID)); sid != "" {
				ctx = pkglog.SetSessionID(ctx, sid)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
