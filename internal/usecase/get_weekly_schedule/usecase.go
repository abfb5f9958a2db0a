package get_weekly_schedule

import (
	"context"
	"fmt"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
	"github.com/praiativa/PA-ScheduleService/internal/schedule"
)

const operationName = "weekly_schedule"

// UseCase use case для построения недельного расписания
type UseCase struct {
	catalog CatalogSource
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case; metrics может быть nil
func NewUseCase(catalog CatalogSource, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case построения недельного расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeeklySchedule: validation failed: %v", err)
		return nil, err
	}

	criteria := toCriteria(req)
	uc.logger.Info("GetWeeklySchedule: type=%s, city=%s, beach=%s, locality=%s, weekday=%s, price=[%g, %g]",
		criteria.Type, criteria.City, criteria.Beach, criteria.Locality, criteria.Weekday,
		criteria.PriceRange.Min, criteria.PriceRange.Max)

	// 2. Загружаем каталог
	catalog, err := uc.catalog.ListActivities(ctx)
	if err != nil {
		uc.logger.Error("GetWeeklySchedule: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	// 3. Раскладываем слоты по дням
	weekly := schedule.BuildWeeklyAggregation(catalog, criteria)
	total := weekly.TotalSlots()

	if uc.metrics != nil {
		uc.metrics.ObserveResultSize(operationName, total)
	}
	uc.logger.Info("GetWeeklySchedule: %d slots from %d activities", total, len(catalog))

	return &Response{
		Days:       toDays(weekly),
		TotalSlots: total,
	}, nil
}

// toDays разворачивает расписание в упорядоченный список дней
func toDays(weekly domain.WeeklySchedule) []Day {
	weekdays := domain.Weekdays()
	days := make([]Day, len(weekdays))
	for i, weekday := range weekdays {
		scheduled := weekly[weekday]
		entries := make([]Entry, len(scheduled))
		for j, item := range scheduled {
			entries[j] = toEntry(item)
		}
		days[i] = Day{
			Weekday: string(weekday),
			Entries: entries,
		}
	}
	return days
}

func toEntry(item domain.ScheduledSlot) Entry {
	activity, slot := item.Activity, item.Slot
	return Entry{
		ActivityID:      activity.ID,
		ActivityName:    activity.Name,
		Type:            string(activity.Type),
		City:            activity.City,
		Beach:           activity.Beach,
		Price:           activity.Price,
		Period:          slot.Period,
		Time:            slot.Time,
		Locality:        string(slot.Locality),
		Capacity:        slot.Capacity,
		Enrolled:        slot.Enrolled,
		AvailableSpots:  slot.AvailableSpots(),
		CapacityPercent: slot.CapacityPercent(),
		CapacityBand:    string(slot.CapacityBand()),
	}
}
