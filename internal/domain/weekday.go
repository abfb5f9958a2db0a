package domain

// Weekday canonical day-of-week identifier used by slots, filters and the weekly grid
type Weekday string

const (
	Monday    Weekday = "segunda"
	Tuesday   Weekday = "terca"
	Wednesday Weekday = "quarta"
	Thursday  Weekday = "quinta"
	Friday    Weekday = "sexta"
	Saturday  Weekday = "sabado"
	Sunday    Weekday = "domingo"
)

// canonicalWeekdays порядок строк в недельной сетке (с понедельника)
var canonicalWeekdays = [...]Weekday{
	Monday,
	Tuesday,
	Wednesday,
	Thursday,
	Friday,
	Saturday,
	Sunday,
}

// Weekdays returns the seven canonical weekdays in grid order
func Weekdays() []Weekday {
	days := make([]Weekday, len(canonicalWeekdays))
	copy(days, canonicalWeekdays[:])
	return days
}

// IsCanonical returns true if the weekday is one of the seven canonical identifiers
func (w Weekday) IsCanonical() bool {
	for _, day := range canonicalWeekdays {
		if w == day {
			return true
		}
	}
	return false
}

func (w Weekday) String() string {
	return string(w)
}
