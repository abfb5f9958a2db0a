package schedule

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// matchesAttributes проверяет измерения уровня активности: тип, город, пляж, цена.
// Общий предикат для плоского списка и для недельного расписания.
func matchesAttributes(activity *domain.Activity, criteria domain.FilterCriteria) bool {
	if !domain.IsAll(criteria.Type) && activity.Type != criteria.Type {
		return false
	}
	if !domain.IsAll(criteria.City) && activity.City != criteria.City {
		return false
	}
	if !domain.IsAll(criteria.Beach) && activity.Beach != criteria.Beach {
		return false
	}
	return criteria.PriceRange.Contains(activity.Price)
}

// matchesLocality проверяет локацию одного слота
func matchesLocality(slot domain.TimeSlot, criteria domain.FilterCriteria) bool {
	if domain.IsAll(criteria.Locality) {
		return true
	}
	return slot.Locality.MatchesFilter(criteria.Locality)
}

// matchesWeekday проверяет день недели одного слота
func matchesWeekday(slot domain.TimeSlot, criteria domain.FilterCriteria) bool {
	if domain.IsAll(criteria.Weekday) {
		return true
	}
	return slot.Weekday == criteria.Weekday
}

// hasSlot возвращает true, если хотя бы один слот активности удовлетворяет match.
// Активность без слотов не проходит ни одно ограничение по слотам.
func hasSlot(activity *domain.Activity, match func(domain.TimeSlot) bool) bool {
	for _, slot := range activity.Slots {
		if match(slot) {
			return true
		}
	}
	return false
}

// searcher сравнивает текст без учёта регистра с учётом Unicode ("Niterói", "ÁGUA").
// cases.Caser хранит состояние, поэтому создаётся на каждый вызов фильтра.
type searcher struct {
	caser cases.Caser
	query string
}

func newSearcher(text string) *searcher {
	if text == "" {
		return nil
	}
	caser := cases.Fold()
	return &searcher{
		caser: caser,
		query: caser.String(text),
	}
}

// matches возвращает true для пустого запроса или при вхождении в name, description, city, beach
func (s *searcher) matches(activity *domain.Activity) bool {
	if s == nil {
		return true
	}
	for _, field := range [...]string{activity.Name, activity.Description, activity.City, activity.Beach} {
		if strings.Contains(s.caser.String(field), s.query) {
			return true
		}
	}
	return false
}
