package domain

// Capacity band thresholds (percent, inclusive lower bounds)
const (
	InfoCapacityPercent     = 40
	WarningCapacityPercent  = 70
	CriticalCapacityPercent = 90
)

// Validation limits for incoming filter criteria
const (
	MaxSearchTextLength  = 200
	MaxFilterValueLength = 100
)
