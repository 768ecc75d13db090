package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name        string
		respond     func(w http.ResponseWriter)
		wantCode    int
		wantMessage string
	}{
		{name: "bad request", respond: func(w http.ResponseWriter) { RespondBadRequest(w, "плохая дата") }, wantCode: http.StatusBadRequest, wantMessage: "плохая дата"},
		{name: "bad request default", respond: func(w http.ResponseWriter) { RespondBadRequest(w, "") }, wantCode: http.StatusBadRequest, wantMessage: msgBadRequest},
		{name: "not found", respond: func(w http.ResponseWriter) { RespondNotFound(w, "нет зоны") }, wantCode: http.StatusNotFound, wantMessage: "нет зоны"},
		{name: "internal", respond: RespondInternalError, wantCode: http.StatusInternalServerError, wantMessage: msgInternalError},
		{name: "unavailable", respond: RespondServiceUnavailable, wantCode: http.StatusServiceUnavailable, wantMessage: msgServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, ErrorResponse{Code: tt.wantCode, Message: tt.wantMessage}, body)
		})
	}
}
