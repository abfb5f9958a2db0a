package filter_activities

import (
	"errors"
	"net/http"

	"github.com/praiativa/PA-ScheduleService/internal/api/handlers"
	filterActivities "github.com/praiativa/PA-ScheduleService/internal/usecase/filter_activities"
)

const (
	msgInvalidPrice    = "некорректная цена, ожидается число"
	msgInvalidCriteria = "некорректные параметры фильтрации"
)

type Handler struct {
	useCase FilterActivitiesUseCase
	logger  Logger
}

func NewHandler(useCase FilterActivitiesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities
// Query params: q, type, city, beach, locality, weekday, minPrice, maxPrice (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /activities - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, filterActivities.ErrInvalidInput):
			h.logger.Warn("GET /activities - Invalid criteria: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCriteria)

		default:
			h.logger.Error("GET /activities - Failed to filter activities: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /activities - Activities retrieved successfully: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
