package get_activity

import (
	"context"

	"github.com/praiativa/PA-ScheduleService/internal/service/activities/models"
)

type ActivityService interface {
	GetByID(ctx context.Context, id string) (*models.ActivityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
