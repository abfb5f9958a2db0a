package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

func TestBuildWeeklyAggregation_AlwaysSevenBuckets(t *testing.T) {
	tests := []struct {
		name     string
		catalog  []*domain.Activity
		criteria domain.FilterCriteria
	}{
		{"empty catalog", nil, criteriaWith(nil)},
		{"nothing matches", sampleCatalog(), criteriaWith(func(c *domain.FilterCriteria) { c.City = "Salvador" })},
		{"weekday filter", sampleCatalog(), criteriaWith(func(c *domain.FilterCriteria) { c.Weekday = domain.Wednesday })},
		{"full catalog", sampleCatalog(), criteriaWith(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildWeeklyAggregation(tt.catalog, tt.criteria)
			require.Len(t, got, 7)
			for _, day := range domain.Weekdays() {
				entries, ok := got[day]
				require.True(t, ok, "missing %s", day)
				require.NotNil(t, entries, "nil bucket %s", day)
			}
		})
	}
}

func TestBuildWeeklyAggregation_Buckets(t *testing.T) {
	got := BuildWeeklyAggregation(sampleCatalog(), criteriaWith(nil))

	assert.Equal(t, []string{"surf-1", "yoga-1"}, bucketIDs(got[domain.Monday]))
	assert.Equal(t, []string{"surf-1"}, bucketIDs(got[domain.Tuesday]))
	assert.Equal(t, []string{"yoga-1"}, bucketIDs(got[domain.Saturday]))
	assert.Equal(t, []string{"sup-1"}, bucketIDs(got[domain.Sunday]))
	assert.Empty(t, got[domain.Wednesday])
	// Слот без дня недели пропускается
	assert.Equal(t, 5, got.TotalSlots())
}

func TestBuildWeeklyAggregation_WeekdayExclusive(t *testing.T) {
	got := BuildWeeklyAggregation(sampleCatalog(), criteriaWith(func(c *domain.FilterCriteria) {
		c.Weekday = domain.Monday
	}))

	for _, day := range domain.Weekdays() {
		if day == domain.Monday {
			continue
		}
		assert.Empty(t, got[day], "bucket %s must be empty", day)
	}
	require.Len(t, got[domain.Monday], 2)
	for _, entry := range got[domain.Monday] {
		assert.Equal(t, domain.Monday, entry.Slot.Weekday)
	}
}

func TestBuildWeeklyAggregation_LocalityPerSlot(t *testing.T) {
	got := BuildWeeklyAggregation(sampleCatalog(), criteriaWith(func(c *domain.FilterCriteria) {
		c.Locality = domain.LocalitySand
	}))

	// Слот "mar" у серфинга во вторник не попадает, хотя активность имеет слот "areia"
	assert.Empty(t, got[domain.Tuesday])
	assert.Equal(t, []string{"surf-1", "yoga-1"}, bucketIDs(got[domain.Monday]))
	assert.Equal(t, []string{"yoga-1"}, bucketIDs(got[domain.Saturday]))
	assert.Empty(t, got[domain.Sunday])
}

func TestBuildWeeklyAggregation_IgnoresSearchText(t *testing.T) {
	withSearch := BuildWeeklyAggregation(sampleCatalog(), criteriaWith(func(c *domain.FilterCriteria) {
		c.SearchText = "texto que não existe"
	}))
	withoutSearch := BuildWeeklyAggregation(sampleCatalog(), criteriaWith(nil))

	assert.Equal(t, withoutSearch.TotalSlots(), withSearch.TotalSlots())
	assert.Equal(t, bucketIDs(withoutSearch[domain.Monday]), bucketIDs(withSearch[domain.Monday]))
}

func TestBuildWeeklyAggregation_ActivityAttributes(t *testing.T) {
	got := BuildWeeklyAggregation(sampleCatalog(), criteriaWith(func(c *domain.FilterCriteria) {
		c.City = "Rio de Janeiro"
		c.PriceRange = domain.PriceRange{Min: 100, Max: 200}
	}))

	assert.Equal(t, 1, got.TotalSlots())
	assert.Equal(t, []string{"sup-1"}, bucketIDs(got[domain.Sunday]))

	got = BuildWeeklyAggregation(sampleCatalog(), criteriaWith(func(c *domain.FilterCriteria) {
		c.Type = domain.TypeWellness
		c.Beach = "Ipanema"
	}))
	assert.Equal(t, 2, got.TotalSlots())
}

func TestBuildWeeklyAggregation_ConcreteScenario(t *testing.T) {
	got := BuildWeeklyAggregation([]*domain.Activity{surfClass()}, criteriaWith(func(c *domain.FilterCriteria) {
		c.Weekday = domain.Tuesday
		c.PriceRange = domain.PriceRange{Min: 0, Max: 100}
	}))

	require.Len(t, got[domain.Tuesday], 1)
	entry := got[domain.Tuesday][0]
	assert.Equal(t, domain.LocalitySea, entry.Slot.Locality)
	assert.Equal(t, 100, entry.Slot.CapacityPercent())
	assert.Equal(t, domain.BandCritical, entry.Slot.CapacityBand())
	assert.Equal(t, 1, got.TotalSlots())
}

func TestBuildWeeklyAggregation_MalformedSlots(t *testing.T) {
	catalog := []*domain.Activity{
		nil,
		{ID: "no-slots", Slots: nil},
		{ID: "bad-weekday", Slots: []domain.TimeSlot{{Weekday: "Segunda"}, {Weekday: "monday"}}},
	}

	got := BuildWeeklyAggregation(catalog, criteriaWith(nil))

	assert.Len(t, got, 7)
	assert.Equal(t, 0, got.TotalSlots())
}
