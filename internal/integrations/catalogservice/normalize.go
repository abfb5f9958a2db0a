package catalogservice

import (
	"encoding/json"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// toDomainActivity переводит документ в доменную модель с безопасными значениями по умолчанию
func toDomainActivity(doc activityDocument) *domain.Activity {
	activity := &domain.Activity{
		ID:          string(doc.ID),
		Name:        string(doc.Name),
		Description: string(doc.Description),
		Type:        domain.ActivityType(doc.Type),
		City:        string(doc.City),
		Beach:       string(doc.Beach),
		Price:       float64(doc.Price),
		Tags:        decodeTags(doc.Tags),
		Slots:       decodeSlots(doc.Slots),
	}
	activity.Normalize()
	return activity
}

// decodeTags возвращает пустой список, если tags отсутствует или не является массивом
func decodeTags(raw json.RawMessage) []string {
	var items []looseString
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []string{}
	}
	tags := make([]string, 0, len(items))
	for _, item := range items {
		if item != "" {
			tags = append(tags, string(item))
		}
	}
	return tags
}

// decodeSlots возвращает пустой список, если slots отсутствует или не является массивом.
// Элементы null и не-объекты пропускаются.
func decodeSlots(raw json.RawMessage) []domain.TimeSlot {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return []domain.TimeSlot{}
	}

	slots := make([]domain.TimeSlot, 0, len(items))
	for _, item := range items {
		var doc slotDocument
		if isNull(item) || json.Unmarshal(item, &doc) != nil {
			continue
		}
		slots = append(slots, domain.TimeSlot{
			Period:   string(doc.Period),
			Time:     string(doc.Time),
			Locality: domain.Locality(doc.Locality),
			Capacity: int(doc.Capacity),
			Enrolled: int(doc.Enrolled),
			Weekday:  domain.Weekday(doc.Weekday),
		})
	}
	return slots
}

// decodeActivities разбирает массив документов; элементы null и не-объекты пропускаются
func decodeActivities(raw []json.RawMessage) []*domain.Activity {
	activities := make([]*domain.Activity, 0, len(raw))
	for _, item := range raw {
		var doc activityDocument
		if isNull(item) || json.Unmarshal(item, &doc) != nil {
			continue
		}
		activities = append(activities, toDomainActivity(doc))
	}
	return activities
}
