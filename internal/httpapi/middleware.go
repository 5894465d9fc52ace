package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/TemirB/smm-orders/internal/observability"
)

// ServerTimingApp measures total request time, writes app;dur=... to
// Server-Timing when headers are still open, reports to Metrics.ObserveHTTP
// and writes an access log line.
func ServerTimingApp(m observability.Metrics, logger *zap.Logger) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.NewNoop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			dur := observability.SinceMs(start)
			observability.AppendServerTiming(w, "app", dur, "")

			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			m.ObserveHTTP(r.Method, route, ww.Status(), dur)
			logger.Debug("http request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Float64("dur_ms", dur),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
