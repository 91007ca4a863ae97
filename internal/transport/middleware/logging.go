package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	redacted      = "[FILTERED]"
	maxLoggedBody = 4 << 10
)

// Keys are matched as substrings of the lowercased header or JSON field name.
var redactKeys = []string{
	"password",
	"token",
	"access",
	"refresh",
	"authorization",
	"secret",
	"cookie",
	"base_salary",
	"extra_hour_rate",
	"amount",
}

func redactable(name string) bool {
	name = strings.ToLower(name)
	for _, k := range redactKeys {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

// LoggingMiddleware logs each request and its response tagged with the
// request id. JSON bodies are logged with credential and pay fields masked; other
// bodies (spreadsheet and PDF downloads) are only measured.
func LoggingMiddleware(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lg := base.With("request_id", w.Header().Get(RequestIDHeader))

			var reqBody []byte
			if r.Body != nil && isJSON(r.Header.Get("Content-Type")) {
				reqBody, _ = io.ReadAll(io.LimitReader(r.Body, maxLoggedBody+1))
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(reqBody), r.Body))
			}

			lg.Info("incoming request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"headers", maskHeaders(r.Header),
				"body", maskBody(reqBody),
			)

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}

			attrs := []any{
				"status_code", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", rec.size,
			}
			if rec.captured.Len() > 0 {
				attrs = append(attrs, "body", maskBody(rec.captured.Bytes()))
			}
			lg.Log(r.Context(), level, "response", attrs...)
		})
	}
}

func isJSON(contentType string) bool {
	return contentType == "" || strings.HasPrefix(contentType, "application/json")
}

type recorder struct {
	http.ResponseWriter
	status   int
	size     int
	captured bytes.Buffer
}

func (rw *recorder) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recorder) Write(b []byte) (int, error) {
	if isJSON(rw.Header().Get("Content-Type")) && rw.captured.Len() < maxLoggedBody {
		rw.captured.Write(b[:min(len(b), maxLoggedBody-rw.captured.Len())])
	}
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

func maskHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for name, values := range h {
		if redactable(name) {
			out[name] = redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

func maskBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		if len(body) > maxLoggedBody {
			return "[TRUNCATED]"
		}
		return string(body)
	}
	masked, err := json.Marshal(maskValue(doc))
	if err != nil {
		return "[UNPRINTABLE]"
	}
	return string(masked)
}

func maskValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, inner := range t {
			if redactable(k) {
				t[k] = redacted
				continue
			}
			t[k] = maskValue(inner)
		}
		return t
	case []any:
		for i := range t {
			t[i] = maskValue(t[i])
		}
		return t
	default:
		return v
	}
}
