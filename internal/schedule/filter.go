// Package schedule содержит чистую логику фильтрации каталога активностей
// и построения недельного расписания. Пакет не выполняет ввод-вывод и не изменяет входные данные.
package schedule

import (
	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// FilterActivities возвращает активности каталога, удовлетворяющие всем критериям (AND).
// Порядок каталога сохраняется, элементы результата ссылаются на те же активности.
//
// Ограничения по локации и дню недели проверяются независимо:
// достаточно одного слота для локации и одного (возможно другого) слота для дня.
func FilterActivities(catalog []*domain.Activity, criteria domain.FilterCriteria) []*domain.Activity {
	result := make([]*domain.Activity, 0, len(catalog))
	search := newSearcher(criteria.SearchText)

	for _, activity := range catalog {
		if activity == nil {
			continue
		}
		if !search.matches(activity) {
			continue
		}
		if !matchesAttributes(activity, criteria) {
			continue
		}
		if !domain.IsAll(criteria.Locality) &&
			!hasSlot(activity, func(slot domain.TimeSlot) bool { return matchesLocality(slot, criteria) }) {
			continue
		}
		if !domain.IsAll(criteria.Weekday) &&
			!hasSlot(activity, func(slot domain.TimeSlot) bool { return matchesWeekday(slot, criteria) }) {
			continue
		}
		result = append(result, activity)
	}

	return result
}
