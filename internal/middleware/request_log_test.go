package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"animalbase/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type entry struct {
	level  string
	msg    string
	fields map[string]any
}

type recLogger struct {
	mu      sync.Mutex
	entries []entry
}

func (l *recLogger) add(level, msg string, f map[string]any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry{level: level, msg: msg, fields: f})
}

func (l *recLogger) With(map[string]any) logger.Logger  { return l }
func (l *recLogger) Debug(msg string, f map[string]any) { l.add("debug", msg, f) }
func (l *recLogger) Info(msg string, f map[string]any)  { l.add("info", msg, f) }
func (l *recLogger) Warn(msg string, f map[string]any)  { l.add("warn", msg, f) }
func (l *recLogger) Error(msg string, f map[string]any) { l.add("error", msg, f) }

func TestRequestLogger_LevelByStatusAndRequestID(t *testing.T) {
	rec := &recLogger{}
	h := chimw.RequestID(RequestLogger(rec)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "animal not found", http.StatusNotFound)
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/animals/x/star", nil))

	if len(rec.entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(rec.entries))
	}
	e := rec.entries[0]
	if e.level != "warn" {
		t.Fatalf("expected warn for 404, got %s", e.level)
	}
	if e.fields["status"] != http.StatusNotFound || e.fields["path"] != "/animals/x/star" {
		t.Fatalf("unexpected fields: %#v", e.fields)
	}
	if id, _ := e.fields["request_id"].(string); id == "" {
		t.Fatalf("expected request_id field, got %#v", e.fields)
	}
}
