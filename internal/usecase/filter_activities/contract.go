package filter_activities

import (
	"context"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// CatalogSource источник каталога активностей (Postgres или удалённое хранилище документов)
type CatalogSource interface {
	// ListActivities возвращает весь каталог в порядке хранения
	ListActivities(ctx context.Context) ([]*domain.Activity, error)
}

// MetricsRecorder интерфейс для записи метрик результата
type MetricsRecorder interface {
	ObserveResultSize(operation string, size int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
