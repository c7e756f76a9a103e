package log

import (
	stdlog "log"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// AccessLog logs one line per request after the handler returns.
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		fields := []interface{}{
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"size", rec.size,
			"remote_addr", r.RemoteAddr,
		}
		if rec.status >= http.StatusInternalServerError {
			Errorw("http request", fields...)
			return
		}
		Infow("http request", fields...)
	})
}

// ServerErrorLog routes net/http server errors (TLS handshakes, panics in
// handlers) to the zap logger at error level.
func ServerErrorLog() *stdlog.Logger {
	l, err := zap.NewStdLogAt(GetZapLogger(), zap.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(GetZapLogger())
	}
	return l
}
