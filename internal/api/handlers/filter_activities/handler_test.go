package filter_activities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiativa/PA-ScheduleService/internal/api/handlers"
	filterActivities "github.com/praiativa/PA-ScheduleService/internal/usecase/filter_activities"
)

type fakeUseCase struct {
	got  *filterActivities.Request
	resp *filterActivities.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *filterActivities.Request) (*filterActivities.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	uc := &fakeUseCase{
		resp: &filterActivities.Response{
			Activities: []filterActivities.Activity{
				{
					ID: "surf-1", Name: "Aula de Surf", Type: "sports", City: "Niterói", Beach: "Icaraí", Price: 80,
					Slots: []filterActivities.Slot{
						{Period: "Manhã", Time: "09:00–10:00", Locality: "areia", Weekday: "segunda",
							Capacity: 10, Enrolled: 9, AvailableSpots: 1, CapacityPercent: 90, CapacityBand: "critical"},
					},
				},
			},
			Total: 1,
		},
	}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/activities?q=surf&type=sports&city=Niter%C3%B3i&locality=areia&weekday=segunda&minPrice=10&maxPrice=100", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "surf", uc.got.SearchText)
	assert.Equal(t, "sports", uc.got.Type)
	assert.Equal(t, "Niterói", uc.got.City)
	assert.Equal(t, "", uc.got.Beach)
	assert.Equal(t, "areia", uc.got.Locality)
	assert.Equal(t, "segunda", uc.got.Weekday)
	require.NotNil(t, uc.got.MinPrice)
	assert.Equal(t, 10.0, *uc.got.MinPrice)
	require.NotNil(t, uc.got.MaxPrice)
	assert.Equal(t, 100.0, *uc.got.MaxPrice)

	var body ActivitiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	require.Len(t, body.Activities, 1)
	assert.Equal(t, []string{}, body.Activities[0].Tags)
	require.Len(t, body.Activities[0].Slots, 1)
	assert.Equal(t, 90, body.Activities[0].Slots[0].CapacityPercent)
	assert.Equal(t, "critical", body.Activities[0].Slots[0].CapacityBand)
}

func TestHandler_Handle_EmptyResultIsArray(t *testing.T) {
	h := NewHandler(&fakeUseCase{resp: &filterActivities.Response{Activities: []filterActivities.Activity{}}}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/activities", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"activities":[],"total":0}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "price is not a number",
			target:     "/api/v1/activities?minPrice=cheap",
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgInvalidPrice,
		},
		{
			name:       "invalid criteria",
			target:     "/api/v1/activities?weekday=monday",
			err:        fmt.Errorf("%w: unknown weekday", filterActivities.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
			wantMsg:    msgInvalidCriteria,
		},
		{
			name:       "catalog failure",
			target:     "/api/v1/activities",
			err:        fmt.Errorf("%w: failed to load catalog: %v", filterActivities.ErrInternal, errors.New("db down")),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			require.Equal(t, tt.wantStatus, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Message)
			}
		})
	}
}
