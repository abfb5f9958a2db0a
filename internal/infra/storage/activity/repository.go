package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/praiativa/PA-ScheduleService/internal/domain"
	"github.com/praiativa/PA-ScheduleService/pkg/dbmetrics"
	"github.com/praiativa/PA-ScheduleService/pkg/psqlbuilder"
)

const (
	activitiesTable = "activities"
	slotsTable      = "activity_slots"
)

// Колонки с NULL-значениями приводятся к значениям по умолчанию на стороне БД
var activityColumns = []string{
	"id",
	"COALESCE(name, '')",
	"COALESCE(description, '')",
	"COALESCE(type, '')",
	"COALESCE(city, '')",
	"COALESCE(beach, '')",
	"COALESCE(price, 0)",
	"COALESCE(tags, '{}')",
}

var slotColumns = []string{
	"activity_id",
	"COALESCE(period, '')",
	"COALESCE(time_label, '')",
	"COALESCE(locality, '')",
	"COALESCE(capacity, 0)",
	"COALESCE(enrolled, 0)",
	"COALESCE(weekday, '')",
}

// Repository репозиторий каталога активностей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория активностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActivities возвращает весь каталог вместе со слотами.
// Порядок каталога: created_at, затем id. Слоты внутри активности - по position.
// Выполняет два запроса (активности и слоты) и собирает результат в памяти.
func (r *Repository) ListActivities(ctx context.Context) ([]*domain.Activity, error) {
	ctx = dbmetrics.WithOperation(ctx, "activity.ListActivities")

	query, args, err := psqlbuilder.Select(activityColumns...).
		From(activitiesTable).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - build activities query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - execute activities query: %v", ErrExecQuery, err)
	}
	activities, err := r.scanActivities(rows)
	if err != nil {
		return nil, err
	}

	if len(activities) == 0 {
		return activities, nil
	}

	slotsQuery, slotsArgs, err := psqlbuilder.Select(slotColumns...).
		From(slotsTable).
		OrderBy("activity_id ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - build slots query: %v", ErrBuildQuery, err)
	}

	slotRows, err := r.db.QueryContext(ctx, slotsQuery, slotsArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActivities - execute slots query: %v", ErrExecQuery, err)
	}
	slotsByActivity, err := r.scanSlots(slotRows)
	if err != nil {
		return nil, err
	}

	for _, activity := range activities {
		activity.Slots = slotsByActivity[activity.ID]
		activity.Normalize()
	}

	return activities, nil
}

// GetByID возвращает активность со слотами по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	ctx = dbmetrics.WithOperation(ctx, "activity.GetByID")

	query, args, err := psqlbuilder.Select(activityColumns...).
		From(activitiesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build activity query: %v", ErrBuildQuery, err)
	}

	var activity domain.Activity
	var tags pq.StringArray
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&activity.ID,
		&activity.Name,
		&activity.Description,
		&activity.Type,
		&activity.City,
		&activity.Beach,
		&activity.Price,
		&tags,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan activity: %v", ErrScanRow, err)
	}
	activity.Tags = []string(tags)

	slotsQuery, slotsArgs, err := psqlbuilder.Select(slotColumns...).
		From(slotsTable).
		Where(squirrel.Eq{"activity_id": id}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build slots query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, slotsQuery, slotsArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute slots query: %v", ErrExecQuery, err)
	}
	slotsByActivity, err := r.scanSlots(rows)
	if err != nil {
		return nil, err
	}

	activity.Slots = slotsByActivity[activity.ID]
	activity.Normalize()

	return &activity, nil
}

// scanActivities сканирует строки активностей без слотов
func (r *Repository) scanActivities(rows *sql.Rows) ([]*domain.Activity, error) {
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		var activity domain.Activity
		var tags pq.StringArray

		err := rows.Scan(
			&activity.ID,
			&activity.Name,
			&activity.Description,
			&activity.Type,
			&activity.City,
			&activity.Beach,
			&activity.Price,
			&tags,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanActivities - scan row: %v", ErrScanRow, err)
		}

		activity.Tags = []string(tags)
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanActivities - rows error: %v", ErrScanRow, err)
	}

	return activities, nil
}

// scanSlots сканирует слоты и группирует их по activity_id, сохраняя порядок строк
func (r *Repository) scanSlots(rows *sql.Rows) (map[string][]domain.TimeSlot, error) {
	defer rows.Close()

	slots := make(map[string][]domain.TimeSlot)
	for rows.Next() {
		var activityID string
		var slot domain.TimeSlot

		err := rows.Scan(
			&activityID,
			&slot.Period,
			&slot.Time,
			&slot.Locality,
			&slot.Capacity,
			&slot.Enrolled,
			&slot.Weekday,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slots[activityID] = append(slots[activityID], slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
