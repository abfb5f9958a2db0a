package get_weekly_schedule

import (
	"errors"
	"net/http"

	"github.com/praiativa/PA-ScheduleService/internal/api/handlers"
	getWeeklySchedule "github.com/praiativa/PA-ScheduleService/internal/usecase/get_weekly_schedule"
)

const (
	msgInvalidPrice    = "некорректная цена, ожидается число"
	msgInvalidCriteria = "некорректные параметры фильтрации"
)

type Handler struct {
	useCase GetWeeklyScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetWeeklyScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/weekly
// Query params: type, city, beach, locality, weekday, minPrice, maxPrice (все необязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /schedule/weekly - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getWeeklySchedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule/weekly - Invalid criteria: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCriteria)

		default:
			h.logger.Error("GET /schedule/weekly - Failed to build schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/weekly - Schedule built successfully: slots=%d", result.TotalSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
