package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/ideabank-backend/pkg/ctxutil"
)

// Logger writes one "http.request" record per request. Server errors log
// at ERROR and client errors at WARN. The verified subject is included when
// Auth ran further down the chain.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			slot := &subjectSlot{}

			next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), subjectSlotKey{}, slot)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			}
			if slot.id > 0 {
				attrs = append(attrs, slog.Int64("subject_id", slot.id))
			}
			logger.LogAttrs(r.Context(), levelFor(sw.status), "http.request", attrs...)
		})
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// subjectSlot lets Auth, which runs on a derived request, report the
// verified subject back to Logger.
type subjectSlot struct {
	id int64
}

type subjectSlotKey struct{}

func recordSubject(ctx context.Context, id int64) {
	if slot, ok := ctx.Value(subjectSlotKey{}).(*subjectSlot); ok {
		slot.id = id
	}
}

// statusWriter records the status code and body size of a response.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
