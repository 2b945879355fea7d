package get_free_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DentalCareService/internal/api/handlers"
	scheduleService "github.com/m04kA/SMC-DentalCareService/internal/service/schedule"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается M/D/YYYY"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctor}/free-slots
// Query params: date (required, M/D/YYYY)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctor := vars["doctor"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /doctors/{doctor}/free-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.GetFreeSlots(r.Context(), doctor, dateStr)
	if err != nil {
		switch {
		case errors.Is(err, scheduleService.ErrInvalidDate), errors.Is(err, scheduleService.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{doctor}/free-slots - Invalid request: doctor=%s, date=%q", doctor, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /doctors/{doctor}/free-slots - Failed to get slots: doctor=%s, date=%q, error=%v",
				doctor, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{doctor}/free-slots - Returned %d slots: doctor=%s, date=%q",
		len(result.Slots), doctor, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
