package schedule

import (
	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// BuildWeeklyAggregation раскладывает пары (активность, слот) по дням недели.
//
// В отличие от FilterActivities проверка идёт по каждому слоту отдельно,
// а текстовый поиск (SearchText) не применяется.
// Слоты с пустым или неканоническим днём недели пропускаются.
// Результат всегда содержит все 7 дней; при фильтре по дню остальные дни пустые.
func BuildWeeklyAggregation(catalog []*domain.Activity, criteria domain.FilterCriteria) domain.WeeklySchedule {
	schedule := domain.NewWeeklySchedule()

	for _, activity := range catalog {
		if activity == nil {
			continue
		}
		if !matchesAttributes(activity, criteria) {
			continue
		}
		for _, slot := range activity.Slots {
			if !matchesLocality(slot, criteria) || !matchesWeekday(slot, criteria) {
				continue
			}
			schedule.Add(activity, slot)
		}
	}

	return schedule
}
