package filter_activities

// Request модель запроса на фильтрацию каталога.
// Пустые строки и "all" не ограничивают измерение, nil-границы цены не ограничивают цену.
type Request struct {
	SearchText string
	Type       string
	City       string
	Beach      string
	Locality   string
	Weekday    string
	MinPrice   *float64
	MaxPrice   *float64
}

// Response модель ответа с отфильтрованным каталогом
type Response struct {
	Activities []Activity // В порядке каталога
	Total      int
}

// Activity модель активности в ответе
type Activity struct {
	ID          string
	Name        string
	Description string
	Type        string
	City        string
	Beach       string
	Price       float64
	Tags        []string
	Slots       []Slot
}

// Slot модель слота с индикатором заполненности
type Slot struct {
	Period          string
	Time            string
	Locality        string
	Weekday         string
	Capacity        int
	Enrolled        int
	AvailableSpots  int
	CapacityPercent int    // round(100 * enrolled / capacity)
	CapacityBand    string // neutral, info, warning, critical
}
