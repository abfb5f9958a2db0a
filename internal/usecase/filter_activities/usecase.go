package filter_activities

import (
	"context"
	"fmt"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
	"github.com/praiativa/PA-ScheduleService/internal/schedule"
)

const operationName = "filter_activities"

// UseCase use case для фильтрации каталога активностей
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

// Execute выполняет use case фильтрации каталога
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FilterActivities: validation failed: %v", err)
		return nil, err
	}

	criteria := toCriteria(req)
	uc.logger.Info("FilterActivities: q=%q, type=%s, city=%s, beach=%s, locality=%s, weekday=%s, price=[%g, %g]",
		criteria.SearchText, criteria.Type, criteria.City, criteria.Beach, criteria.Locality, criteria.Weekday,
		criteria.PriceRange.Min, criteria.PriceRange.Max)

	// 2. Загружаем каталог
	catalog, err := uc.catalog.ListActivities(ctx)
	if err != nil {
		uc.logger.Error("FilterActivities: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	// 3. Фильтруем
	matched := schedule.FilterActivities(catalog, criteria)

	if uc.metrics != nil {
		uc.metrics.ObserveResultSize(operationName, len(matched))
	}
	uc.logger.Info("FilterActivities: matched %d of %d activities", len(matched), len(catalog))

	return &Response{
		Activities: toActivities(matched),
		Total:      len(matched),
	}, nil
}

func toActivities(activities []*domain.Activity) []Activity {
	result := make([]Activity, len(activities))
	for i, activity := range activities {
		slots := make([]Slot, len(activity.Slots))
		for j := range activity.Slots {
			slots[j] = toSlot(&activity.Slots[j])
		}
		tags := make([]string, len(activity.Tags))
		copy(tags, activity.Tags)

		result[i] = Activity{
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
	return result
}

func toSlot(slot *domain.TimeSlot) Slot {
	return Slot{
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
