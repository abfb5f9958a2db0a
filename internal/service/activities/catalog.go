package activities

import (
	"context"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
)

// Catalog источник каталога с учётом метрик размера и ошибок загрузки.
// Оборачивает Postgres-репозиторий или клиент удалённого хранилища.
type Catalog struct {
	source  CatalogSource
	name    string
	metrics CatalogMetrics
}

// NewCatalog создает источник каталога; metrics может быть nil
func NewCatalog(source CatalogSource, name string, metrics CatalogMetrics) *Catalog {
	return &Catalog{
		source:  source,
		name:    name,
		metrics: metrics,
	}
}

// ListActivities загружает каталог и обновляет метрику его размера
func (c *Catalog) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	catalog, err := c.source.ListActivities(ctx)
	if err != nil {
		if c.metrics != nil {
			c.metrics.IncCatalogFetchError(c.name)
		}
		return nil, err
	}
	if c.metrics != nil {
		c.metrics.SetCatalogSize(c.name, len(catalog))
	}
	return catalog, nil
}

// GetByID загружает одну активность; "не найдено" не считается ошибкой загрузки
func (c *Catalog) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	activity, err := c.source.GetByID(ctx, id)
	if err != nil && !isNotFound(err) && c.metrics != nil {
		c.metrics.IncCatalogFetchError(c.name)
	}
	return activity, err
}
