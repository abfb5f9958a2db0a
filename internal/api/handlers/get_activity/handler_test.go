package get_activity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiativa/PA-ScheduleService/internal/api/handlers"
	"github.com/praiativa/PA-ScheduleService/internal/service/activities"
	"github.com/praiativa/PA-ScheduleService/internal/service/activities/models"
)

type fakeService struct {
	gotID string
	resp  *models.ActivityResponse
	err   error
}

func (f *fakeService) GetByID(_ context.Context, id string) (*models.ActivityResponse, error) {
	f.gotID = id
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/activities/{activityId}", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{
		resp: &models.ActivityResponse{
			ID: "sup-1", Name: "Stand Up Paddle", Tags: []string{}, Slots: []models.SlotResponse{},
		},
	}

	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/activities/sup-1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sup-1", svc.gotID)

	var body models.ActivityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Stand Up Paddle", body.Name)
	assert.Empty(t, body.Slots)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "not found", err: activities.ErrActivityNotFound, wantStatus: http.StatusNotFound, wantMsg: msgNotFound},
		{name: "invalid id", err: activities.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidActivityID},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, nopLogger{}), "/api/v1/activities/x")

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
