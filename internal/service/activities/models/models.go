package models

import (
	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// ActivityResponse активность каталога со слотами
type ActivityResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Type        string         `json:"type"`
	City        string         `json:"city"`
	Beach       string         `json:"beach"`
	Price       float64        `json:"price"`
	Tags        []string       `json:"tags"`
	Slots       []SlotResponse `json:"slots"`
}

// SlotResponse слот активности с индикатором заполненности
type SlotResponse struct {
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

// FromDomainActivity конвертирует доменную активность в модель ответа
func FromDomainActivity(activity *domain.Activity) *ActivityResponse {
	if activity == nil {
		return nil
	}

	tags := make([]string, len(activity.Tags))
	copy(tags, activity.Tags)

	slots := make([]SlotResponse, len(activity.Slots))
	for i := range activity.Slots {
		slots[i] = FromDomainSlot(&activity.Slots[i])
	}

	return &ActivityResponse{
		ID:          activity.ID,
		Name:        activity.Name,
		Description: activity.Description,
		Type:        string(activity.Type),
		City:        activity.City,
		Beach:       activity.Beach,
		Price:       activity.Price,
		Tags:        tags,
		Slots:       slots,
	}
}

// FromDomainSlot конвертирует доменный слот в модель ответа
func FromDomainSlot(slot *domain.TimeSlot) SlotResponse {
	return SlotResponse{
		Period:          slot.Period,
		Time:            slot.Time,
		Locality:        string(slot.Locality),
		Weekday:         string(slot.Weekday),
		Capacity:        slot.Capacity,
		Enrolled:        slot.Enrolled,
		AvailableSpots:  slot.AvailableSpots(),
		CapacityPercent: slot.CapacityPercent(),
		CapacityBand:    string(slot.CapacityBand()),
	}
}
