package domain

// ActivityType represents the category of an activity
type ActivityType string

const (
	TypeSports    ActivityType = "sports"
	TypeLeisure   ActivityType = "leisure"
	TypeTourism   ActivityType = "tourism"
	TypeWellness  ActivityType = "wellness"
	TypeEducation ActivityType = "education"
)

// Activity represents a bookable beach activity offered by an instructor
type Activity struct {
	ID          string
	Name        string
	Description string
	Type        ActivityType
	City        string
	Beach       string
	Price       float64
	Tags        []string   // Только для отображения, в фильтрации не участвуют
	Slots       []TimeSlot // Еженедельные слоты в порядке хранения
}

// TimeSlot represents a recurring weekly occurrence of an activity
type TimeSlot struct {
	Period   string // Например "Manhã"
	Time     string // Отображаемая строка ("09:00–10:00"), не парсится
	Locality Locality
	Capacity int
	Enrolled int
	Weekday  Weekday // Пустое значение - слот не попадает в недельное расписание
}

// Normalize приводит активность к безопасным значениям по умолчанию.
// Вызывается адаптерами источников каталога при чтении документов,
// чтобы логика фильтрации не проверяла поля повторно.
func (a *Activity) Normalize() {
	if a.Tags == nil {
		a.Tags = []string{}
	}
	if a.Slots == nil {
		a.Slots = []TimeSlot{}
	}
	if a.Price < 0 {
		a.Price = 0
	}
	for i := range a.Slots {
		a.Slots[i].Normalize()
	}
}

// Normalize приводит счётчики слота к неотрицательным значениям
func (s *TimeSlot) Normalize() {
	if s.Capacity < 0 {
		s.Capacity = 0
	}
	if s.Enrolled < 0 {
		s.Enrolled = 0
	}
}

// HasSlots returns true if the activity has at least one weekly slot
func (a *Activity) HasSlots() bool {
	return len(a.Slots) > 0
}

// AvailableSpots returns the number of free places in the slot (never negative)
func (s *TimeSlot) AvailableSpots() int {
	free := s.Capacity - s.Enrolled
	if free < 0 {
		return 0
	}
	return free
}

// IsFull returns true if the slot has no free places
func (s *TimeSlot) IsFull() bool {
	return s.AvailableSpots() == 0
}

// CapacityPercent returns the enrolled/capacity ratio rounded to a whole percent
func (s *TimeSlot) CapacityPercent() int {
	return CapacityPercent(s.Enrolled, s.Capacity)
}

// CapacityBand returns the display band for the slot occupancy
func (s *TimeSlot) CapacityBand() CapacityBand {
	return BandForPercent(s.CapacityPercent())
}
