package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, "INFO "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.lines = append(l.lines, "WARN "+fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.lines = append(l.lines, "ERROR "+fmt.Sprintf(format, v...))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := uuid.Parse(seen)
	require.NoError(t, err, "generated id is a uuid")
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, incoming)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, incoming, seen, "valid incoming id is kept")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "not a uuid")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.NotEqual(t, "not a uuid", seen)
}

func TestAccessLog(t *testing.T) {
	log := &recordingLogger{}

	r := mux.NewRouter()
	r.Use(RequestID, AccessLog(log))
	r.HandleFunc("/ok", func(http.ResponseWriter, *http.Request) {})
	r.HandleFunc("/bad", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadRequest) })
	r.HandleFunc("/fail", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) })

	for _, path := range []string{"/ok", "/bad", "/fail"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, log.lines, 3)
	assert.Contains(t, log.lines[0], "INFO GET /ok - status=200")
	assert.Contains(t, log.lines[1], "WARN GET /bad - status=400")
	assert.Contains(t, log.lines[2], "ERROR GET /fail - status=503")
	assert.Contains(t, log.lines[0], "request_id=")
}
