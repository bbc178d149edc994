package create_shift

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FleetService/internal/domain"
	createShift "github.com/m04kA/SMC-FleetService/internal/usecase/create_shift"
)

type fakeUseCase struct {
	gotReq *createShift.Request
	resp   *createShift.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createShift.Request) (*createShift.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/shifts", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_CreatesShift(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createShift.Response{
			ID:        42,
			DriverID:  1,
			BusID:     2,
			RouteID:   3,
			Date:      mustDate(t, "2025-11-03"),
			StartTime: "08:00",
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(t, handler, `{"driver_id":1,"bus_id":2,"route_id":3,"shift_date":"2025-11-03","shift_time":"08:00"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":42,"driver_id":1,"bus_id":2,"route_id":3,"shift_date":"2025-11-03","shift_time":"08:00"}`,
		rec.Body.String())

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.DriverID)
	assert.Equal(t, "08:00", uc.gotReq.StartTime.String())
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid request body"}`, rec.Body.String())
}

func TestHandle_MissingFields(t *testing.T) {
	uc := &fakeUseCase{}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(t, handler, `{"driver_id":1,"bus_id":2}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Missing required fields"}`, rec.Body.String())
	assert.Nil(t, uc.gotReq)
}

func TestHandle_InvalidDateFormat(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, handler, `{"driver_id":1,"bus_id":2,"route_id":3,"shift_date":"03.11.2025","shift_time":"08:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid date or time format, expected YYYY-MM-DD and HH:MM"}`, rec.Body.String())
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{
		err: &createShift.ConflictError{
			Existing:  domain.ShiftWindow{Start: "08:00", End: "09:00"},
			Candidate: domain.ShiftWindow{Start: "08:30", End: "09:00"},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(t, handler, `{"driver_id":1,"bus_id":2,"route_id":3,"shift_date":"2025-11-03","shift_time":"08:30"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"error":"Driver already has an overlapping shift from 08:00 to 09:00. New shift would run from 08:30 to 09:00."}`,
		rec.Body.String())
}

func TestHandle_RouteNotFound(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: createShift.ErrRouteNotFound}, nopLogger{})

	rec := doRequest(t, handler, `{"driver_id":1,"bus_id":2,"route_id":99,"shift_date":"2025-11-03","shift_time":"08:00"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Route not found"}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: createShift.ErrInternal}, nopLogger{})

	rec := doRequest(t, handler, `{"driver_id":1,"bus_id":2,"route_id":3,"shift_date":"2025-11-03","shift_time":"08:00"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	date, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return date
}
