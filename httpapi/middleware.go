package httpapi

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sync/atomic"
	"time"
)

// RequestIDHeader carries the request ID on requests and responses.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 256

const timeoutBody = `{"error":"request timed out"}`

var errInternal = errors.New("internal server error")

type requestIDKey struct{}

// RequestID returns the request ID stored in ctx, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// newMiddlewareChain wraps the document handler:
// request ID, access log, recovery, then the request timeout.
func newMiddlewareChain(name string, cfg Config, handler http.Handler) http.Handler {
	return withRequestID(newIDSource(), withAccessLog(name, withRecovery(withTimeout(cfg.RequestTimeout, handler))))
}

// idSource issues IDs made of a random per-listener prefix and a counter.
type idSource struct {
	prefix  string
	counter atomic.Uint64
}

func newIDSource() *idSource {
	var buf [4]byte

	_, err := rand.Read(buf[:])
	if err != nil {
		slog.Warn("request id prefix is not random", "error", err)
	}

	return &idSource{prefix: hex.EncodeToString(buf[:])}
}

func (s *idSource) next() string {
	return fmt.Sprintf("%s-%08x", s.prefix, s.counter.Add(1))
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for i := range len(id) {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}

	return true
}

// withRequestID reuses a printable incoming X-Request-ID or issues a new one,
// stores it in the request context and echoes it on the response.
func withRequestID(ids *idSource, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = ids.next()
		}

		w.Header().Set(RequestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// withTimeout answers 503 with a JSON error when handling takes longer than d.
func withTimeout(d time.Duration, next http.Handler) http.Handler {
	if d <= 0 {
		d = DefaultRequestTimeout
	}

	return http.TimeoutHandler(next, d, timeoutBody)
}

// statusRecorder captures the status code written by the document handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// withAccessLog logs every request through global slog.
// Info for 2xx/3xx, Warn for 4xx, Error for 5xx.
func withAccessLog(name string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		attrs := []any{
			slog.String("name", name),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		}

		if id := RequestID(r.Context()); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		switch {
		case rec.status >= http.StatusInternalServerError:
			slog.Error("document request", attrs...)
		case rec.status >= http.StatusBadRequest:
			slog.Warn("document request", attrs...)
		default:
			slog.Info("document request", attrs...)
		}
	})
}

// withRecovery turns a handler panic into a 500 JSON error.
// http.ErrAbortHandler is re-raised so the server aborts the response.
func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			slog.Error("panic recovered",
				slog.String("panic", fmt.Sprint(rec)),
				slog.String("stack", string(debug.Stack())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("request_id", RequestID(r.Context())),
			)

			writeError(w, http.StatusInternalServerError, errInternal)
		}()

		next.ServeHTTP(w, r)
	})
}
