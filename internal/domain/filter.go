package domain

import "math"

// FilterAll значение-маркер "без ограничения" для любого измерения фильтра
const FilterAll = "all"

// PriceRange closed price interval, both bounds inclusive
type PriceRange struct {
	Min float64
	Max float64
}

// Contains returns true if price lies within [Min, Max]
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// FilterCriteria критерии фильтрации каталога активностей.
// Пустая строка и "all" означают отсутствие ограничения по измерению.
type FilterCriteria struct {
	SearchText string // Подстрока без учёта регистра по name, description, city, beach
	Type       ActivityType
	City       string
	Beach      string
	Locality   Locality
	Weekday    Weekday
	PriceRange PriceRange
}

// DefaultFilterCriteria returns criteria that match the whole catalog
func DefaultFilterCriteria() FilterCriteria {
	return FilterCriteria{
		Type:     FilterAll,
		City:     FilterAll,
		Beach:    FilterAll,
		Locality: FilterAll,
		Weekday:  FilterAll,
		PriceRange: PriceRange{
			Min: 0,
			Max: math.MaxFloat64,
		},
	}
}

// IsAll returns true if the filter value does not constrain its dimension
func IsAll[T ~string](value T) bool {
	return value == "" || value == FilterAll
}

// HasSlotConstraints returns true if locality or weekday filters are active
func (c FilterCriteria) HasSlotConstraints() bool {
	return !IsAll(c.Locality) || !IsAll(c.Weekday)
}
