package get_weekly_schedule

// Request модель запроса недельного расписания.
// Текстовый поиск в расписании не применяется.
type Request struct {
	Type     string
	City     string
	Beach    string
	Locality string
	Weekday  string
	MinPrice *float64
	MaxPrice *float64
}

// Response модель недельного расписания: ровно 7 дней, начиная с понедельника
type Response struct {
	Days       []Day
	TotalSlots int
}

// Day строка недельной сетки; пустой Entries означает "нет активностей"
type Day struct {
	Weekday string
	Entries []Entry
}

// Entry пара активность + слот
type Entry struct {
	ActivityID   string
	ActivityName string
	Type         string
	City         string
	Beach        string
	Price        float64

	Period          string
	Time            string
	Locality        string
	Capacity        int
	Enrolled        int
	AvailableSpots  int
	CapacityPercent int
	CapacityBand    string
}
