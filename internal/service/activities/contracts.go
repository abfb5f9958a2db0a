package activities

import (
	"context"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// CatalogSource интерфейс источника каталога активностей
type CatalogSource interface {
	ListActivities(ctx context.Context) ([]*domain.Activity, error)
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
}

// CatalogMetrics интерфейс метрик источника каталога
type CatalogMetrics interface {
	SetCatalogSize(source string, size int)
	IncCatalogFetchError(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
