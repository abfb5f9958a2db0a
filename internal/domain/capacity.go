package domain

import "math"

// CapacityBand display band for slot occupancy
type CapacityBand string

const (
	BandNeutral  CapacityBand = "neutral"  // < 40%
	BandInfo     CapacityBand = "info"     // 40-69%
	BandWarning  CapacityBand = "warning"  // 70-89%
	BandCritical CapacityBand = "critical" // >= 90%
)

// CapacityPercent returns round(100 * enrolled / capacity), or 0 when capacity is not positive
func CapacityPercent(enrolled, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(enrolled) / float64(capacity)))
}

// BandForPercent maps an occupancy percent to its display band
func BandForPercent(percent int) CapacityBand {
	switch {
	case percent >= CriticalCapacityPercent:
		return BandCritical
	case percent >= WarningCapacityPercent:
		return BandWarning
	case percent >= InfoCapacityPercent:
		return BandInfo
	default:
		return BandNeutral
	}
}
