package filter_activities

import (
	"net/url"

	"github.com/praiativa/PA-ScheduleService/internal/api/handlers"
	filterActivities "github.com/praiativa/PA-ScheduleService/internal/usecase/filter_activities"
)

// ActivitiesResponse HTTP response model
type ActivitiesResponse struct {
	Activities []Activity `json:"activities"`
	Total      int        `json:"total"`
}

// Activity модель активности
type Activity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	City        string   `json:"city"`
	Beach       string   `json:"beach"`
	Price       float64  `json:"price"`
	Tags        []string `json:"tags"`
	Slots       []Slot   `json:"slots"`
}

// Slot модель слота
type Slot struct {
	Period          string `json:"period"`
	Time            string `json:"time"`
	Locality        string `json:"locality"`
	Weekday         string `json:"weekday"`
	Capacity        int    `json:"capacity"`
	Enrolled        int    `json:"enrolled"`
	AvailableSpots  int    `json:"availableSpots"`
	CapacityPercent int    `json:"capacityPercent"`
	CapacityBand    string `json:"capacityBand"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *filterActivities.Response) *ActivitiesResponse {
	activities := make([]Activity, len(resp.Activities))
	for i, activity := range resp.Activities {
		slots := make([]Slot, len(activity.Slots))
		for j, slot := range activity.Slots {
			slots[j] = Slot{
				Period:          slot.Period,
				Time:            slot.Time,
				Locality:        slot.Locality,
				Weekday:         slot.Weekday,
				Capacity:        slot.Capacity,
				Enrolled:        slot.Enrolled,
				AvailableSpots:  slot.AvailableSpots,
				CapacityPercent: slot.CapacityPercent,
				CapacityBand:    slot.CapacityBand,
			}
		}
		tags := activity.Tags
		if tags == nil {
			tags = []string{}
		}
		activities[i] = Activity{
			ID:          activity.ID,
			Name:        activity.Name,
			Description: activity.Description,
			Type:        activity.Type,
			City:        activity.City,
			Beach:       activity.Beach,
			Price:       activity.Price,
			Tags:        tags,
			Slots:       slots,
		}
	}

	return &ActivitiesResponse{
		Activities: activities,
		Total:      resp.Total,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(query url.Values) (*filterActivities.Request, error) {
	minPrice, err := handlers.QueryFloat(query, "minPrice")
	if err != nil {
		return nil, err
	}
	maxPrice, err := handlers.QueryFloat(query, "maxPrice")
	if err != nil {
		return nil, err
	}

	return &filterActivities.Request{
		SearchText: query.Get("q"),
		Type:       query.Get("type"),
		City:       query.Get("city"),
		Beach:      query.Get("beach"),
		Locality:   query.Get("locality"),
		Weekday:    query.Get("weekday"),
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
	}, nil
}
