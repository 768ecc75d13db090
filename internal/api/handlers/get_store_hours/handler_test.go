package get_store_hours

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StoreAvailability/internal/domain"
	"github.com/m04kA/SMC-StoreAvailability/pkg/ptr"
	"github.com/m04kA/SMC-StoreAvailability/pkg/types"
)

type stubService struct {
	schedule domain.WeeklySchedule
	err      error
}

func (s *stubService) GetStoreHours(_ context.Context) (domain.WeeklySchedule, error) {
	return s.schedule, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Success(t *testing.T) {
	schedule := domain.WeeklySchedule{
		domain.Monday: {OpenTime: ptr.Ptr(types.MustTimeString("09:00")), CloseTime: ptr.Ptr(types.MustTimeString("17:00"))},
		domain.Sunday: {IsClosed: true},
		domain.Friday: {OpenTime: ptr.Ptr(types.MustTimeString("09:00"))},
	}
	h := NewHandler(&stubService{schedule: schedule}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/store/hours", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"days":[
		{"dayOfWeek":"sunday","openTime":null,"closeTime":null,"isClosed":true},
		{"dayOfWeek":"monday","openTime":"09:00","closeTime":"17:00","isClosed":false},
		{"dayOfWeek":"friday","openTime":"09:00","closeTime":null,"isClosed":true}
	]}`, rec.Body.String())
}

func TestHandler_FetchFailure(t *testing.T) {
	h := NewHandler(&stubService{err: errors.New("down")}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/store/hours", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":503`)
}
