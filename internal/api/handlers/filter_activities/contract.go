package filter_activities

import (
	"context"

	filterActivities "github.com/praiativa/PA-ScheduleService/internal/usecase/filter_activities"
)

type FilterActivitiesUseCase interface {
	Execute(ctx context.Context, req *filterActivities.Request) (*filterActivities.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
