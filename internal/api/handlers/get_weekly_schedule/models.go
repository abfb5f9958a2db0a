package get_weekly_schedule

import (
	"net/url"

	"github.com/praiativa/PA-ScheduleService/internal/api/handlers"
	getWeeklySchedule "github.com/praiativa/PA-ScheduleService/internal/usecase/get_weekly_schedule"
)

// WeeklyScheduleResponse HTTP response model
type WeeklyScheduleResponse struct {
	Days       []Day `json:"days"`
	TotalSlots int   `json:"totalSlots"`
}

// Day строка недельной сетки
type Day struct {
	Weekday string  `json:"weekday"`
	Entries []Entry `json:"entries"`
}

// Entry активность в слоте дня
type Entry struct {
	ActivityID      string  `json:"activityId"`
	ActivityName    string  `json:"activityName"`
	Type            string  `json:"type"`
	City            string  `json:"city"`
	Beach           string  `json:"beach"`
	Price           float64 `json:"price"`
	Period          string  `json:"period"`
	Time            string  `json:"time"`
	Locality        string  `json:"locality"`
	Capacity        int     `json:"capacity"`
	Enrolled        int     `json:"enrolled"`
	AvailableSpots  int     `json:"availableSpots"`
	CapacityPercent int     `json:"capacityPercent"`
	CapacityBand    string  `json:"capacityBand"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeeklySchedule.Response) *WeeklyScheduleResponse {
	days := make([]Day, len(resp.Days))
	for i, day := range resp.Days {
		entries := make([]Entry, len(day.Entries))
		for j, entry := range day.Entries {
			entries[j] = Entry(entry)
		}
		days[i] = Day{
			Weekday: day.Weekday,
			Entries: entries,
		}
	}

	return &WeeklyScheduleResponse{
		Days:       days,
		TotalSlots: resp.TotalSlots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров; q не принимается
func ToUseCaseRequest(query url.Values) (*getWeeklySchedule.Request, error) {
	minPrice, err := handlers.QueryFloat(query, "minPrice")
	if err != nil {
		return nil, err
	}
	maxPrice, err := handlers.QueryFloat(query, "maxPrice")
	if err != nil {
		return nil, err
	}

	return &getWeeklySchedule.Request{
		Type:     query.Get("type"),
		City:     query.Get("city"),
		Beach:    query.Get("beach"),
		Locality: query.Get("locality"),
		Weekday:  query.Get("weekday"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	}, nil
}
