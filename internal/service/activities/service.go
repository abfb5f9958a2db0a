package activities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	activityRepo "github.com/praiativa/PA-ScheduleService/internal/infra/storage/activity"
	catalogClient "github.com/praiativa/PA-ScheduleService/internal/integrations/catalogservice"
	"github.com/praiativa/PA-ScheduleService/internal/service/activities/models"
)

// Service сервис для чтения отдельных активностей каталога
type Service struct {
	catalog CatalogSource
	logger  Logger
}

// NewService создает новый экземпляр сервиса активностей
func NewService(catalog CatalogSource, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// GetByID получает активность по ID вместе со слотами и индикаторами заполненности
func (s *Service) GetByID(ctx context.Context, id string) (*models.ActivityResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		s.logger.Warn("GetByID: empty activity id")
		return nil, fmt.Errorf("%w: activity id is required", ErrInvalidInput)
	}

	s.logger.Info("GetByID: fetching activity id=%s", id)

	activity, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			s.logger.Warn("GetByID: activity id=%s not found", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("GetByID: catalog error for activity id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - catalog error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched activity id=%s with %d slots", id, len(activity.Slots))
	return models.FromDomainActivity(activity), nil
}

// isNotFound распознаёт "не найдено" от любого источника каталога
func isNotFound(err error) bool {
	return errors.Is(err, activityRepo.ErrActivityNotFound) ||
		errors.Is(err, catalogClient.ErrActivityNotFound) ||
		errors.Is(err, ErrActivityNotFound)
}
