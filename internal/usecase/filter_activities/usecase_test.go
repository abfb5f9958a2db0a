package filter_activities

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

type fakeCatalog struct {
	activities []*domain.Activity
	err        error
	calls      int
}

func (f *fakeCatalog) ListActivities(context.Context) ([]*domain.Activity, error) {
	f.calls++
	return f.activities, f.err
}

type fakeMetrics struct {
	sizes map[string]int
}

func (f *fakeMetrics) ObserveResultSize(operation string, size int) {
	if f.sizes == nil {
		f.sizes = make(map[string]int)
	}
	f.sizes[operation] = size
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ptr(v float64) *float64 {
	return &v
}

func testCatalog() []*domain.Activity {
	return []*domain.Activity{
		{
			ID: "surf-1", Name: "Aula de Surf", Description: "Iniciação no mar", Type: domain.TypeSports,
			City: "Niterói", Beach: "Icaraí", Price: 80, Tags: []string{"surf"},
			Slots: []domain.TimeSlot{
				{Period: "Manhã", Time: "09:00–10:00", Locality: domain.LocalitySea, Capacity: 10, Enrolled: 9, Weekday: domain.Monday},
			},
		},
		{
			ID: "yoga-1", Name: "Yoga na Praia", Type: domain.TypeWellness,
			City: "Niterói", Beach: "Itacoatiara", Price: 40, Tags: []string{},
			Slots: []domain.TimeSlot{
				{Period: "Tarde", Time: "17:00–18:00", Locality: domain.LocalityBoardwalk, Capacity: 20, Enrolled: 5, Weekday: domain.Wednesday},
			},
		},
		{
			ID: "tour-1", Name: "Passeio de Escuna", Type: domain.TypeTourism,
			City: "Rio de Janeiro", Beach: "Copacabana", Price: 150, Tags: []string{}, Slots: []domain.TimeSlot{},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantIDs []string
	}{
		{
			name:    "empty request returns whole catalog",
			req:     &Request{},
			wantIDs: []string{"surf-1", "yoga-1", "tour-1"},
		},
		{
			name:    "all values behave as empty",
			req:     &Request{Type: "all", City: "all", Beach: "all", Locality: "all", Weekday: "all"},
			wantIDs: []string{"surf-1", "yoga-1", "tour-1"},
		},
		{
			name:    "search folds case",
			req:     &Request{SearchText: "NITERÓI"},
			wantIDs: []string{"surf-1", "yoga-1"},
		},
		{
			name:    "sand locality includes boardwalk",
			req:     &Request{Locality: "areia"},
			wantIDs: []string{"yoga-1"},
		},
		{
			name:    "price bounds are inclusive",
			req:     &Request{MinPrice: ptr(40), MaxPrice: ptr(80)},
			wantIDs: []string{"surf-1", "yoga-1"},
		},
		{
			name:    "only max price",
			req:     &Request{MaxPrice: ptr(50)},
			wantIDs: []string{"yoga-1"},
		},
		{
			name:    "weekday excludes activity without slots",
			req:     &Request{Weekday: "segunda"},
			wantIDs: []string{"surf-1"},
		},
		{
			name:    "unknown type matches nothing",
			req:     &Request{Type: "cooking"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &fakeMetrics{}
			uc := NewUseCase(&fakeCatalog{activities: testCatalog()}, metrics, nopLogger{})

			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)

			ids := make([]string, 0, len(resp.Activities))
			for _, activity := range resp.Activities {
				ids = append(ids, activity.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Total)
			assert.Equal(t, len(tt.wantIDs), metrics.sizes[operationName])
		})
	}
}

func TestUseCase_Execute_CapacityIndicator(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{activities: testCatalog()}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Weekday: "segunda"})
	require.NoError(t, err)
	require.Len(t, resp.Activities, 1)
	require.Len(t, resp.Activities[0].Slots, 1)

	slot := resp.Activities[0].Slots[0]
	assert.Equal(t, 90, slot.CapacityPercent)
	assert.Equal(t, string(domain.BandCritical), slot.CapacityBand)
	assert.Equal(t, 1, slot.AvailableSpots)
	assert.Equal(t, "mar", slot.Locality)
	assert.Equal(t, []string{"surf"}, resp.Activities[0].Tags)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{name: "nil request", req: nil},
		{name: "negative min price", req: &Request{MinPrice: ptr(-1)}},
		{name: "negative max price", req: &Request{MaxPrice: ptr(-0.5)}},
		{name: "min above max", req: &Request{MinPrice: ptr(100), MaxPrice: ptr(50)}},
		{name: "NaN price", req: &Request{MaxPrice: ptr(math.NaN())}},
		{name: "unknown weekday", req: &Request{Weekday: "monday"}},
		{name: "search text too long", req: &Request{SearchText: string(make([]rune, domain.MaxSearchTextLength+1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := &fakeCatalog{activities: testCatalog()}
			uc := NewUseCase(catalog, nil, nopLogger{})

			resp, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, resp)
			assert.Zero(t, catalog.calls)
		})
	}
}

func TestUseCase_Execute_CatalogError(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{err: errors.New("connection refused")}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Nil(t, resp)
}

func TestUseCase_Execute_EmptyCatalog(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{SearchText: "surf"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Activities)
	assert.Empty(t, resp.Activities)
	assert.Zero(t, resp.Total)
}
