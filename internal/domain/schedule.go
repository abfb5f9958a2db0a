package domain

// ScheduledSlot pair of an activity and one of its slots
type ScheduledSlot struct {
	Activity *Activity
	Slot     TimeSlot
}

// WeeklySchedule weekday -> matching slots in catalog order.
// All seven canonical weekdays are always present as keys.
type WeeklySchedule map[Weekday][]ScheduledSlot

// NewWeeklySchedule returns a schedule with an empty bucket for every canonical weekday
func NewWeeklySchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, len(canonicalWeekdays))
	for _, day := range canonicalWeekdays {
		schedule[day] = make([]ScheduledSlot, 0)
	}
	return schedule
}

// Add appends a slot to its weekday bucket; non-canonical weekdays are ignored
func (s WeeklySchedule) Add(activity *Activity, slot TimeSlot) bool {
	if !slot.Weekday.IsCanonical() {
		return false
	}
	s[slot.Weekday] = append(s[slot.Weekday], ScheduledSlot{Activity: activity, Slot: slot})
	return true
}

// TotalSlots returns the number of slots across all buckets
func (s WeeklySchedule) TotalSlots() int {
	total := 0
	for _, entries := range s {
		total += len(entries)
	}
	return total
}
