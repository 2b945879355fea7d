package get_service_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DentalCareService/internal/api/handlers"
	getServicePrice "github.com/m04kA/SMC-DentalCareService/internal/usecase/get_service_price"
)

const (
	msgMissingQuery      = "параметр query обязателен"
	msgServiceNotMatched = "услуга не найдена, уточните запрос"
)

type Handler struct {
	useCase GetServicePriceUseCase
	logger  Logger
}

func NewHandler(useCase GetServicePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/price
// Query params: query (required) - свободный текст пациента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		h.logger.Warn("GET /services/price - Missing query param")
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getServicePrice.Request{Query: query})
	if err != nil {
		var unmatchedErr *getServicePrice.ServiceUnmatchedError

		switch {
		case errors.As(err, &unmatchedErr):
			h.logger.Info("GET /services/price - Service not matched: query=%q, %d suggestions",
				query, len(unmatchedErr.Suggestions))
			suggestions := make([]string, len(unmatchedErr.Suggestions))
			for i, svc := range unmatchedErr.Suggestions {
				suggestions[i] = svc.Name
			}
			handlers.RespondJSON(w, http.StatusNotFound, SuggestionsResponse{
				Message:     msgServiceNotMatched,
				Suggestions: suggestions,
			})

		default:
			h.logger.Error("GET /services/price - Failed to resolve service: query=%q, error=%v", query, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/price - Resolved: query=%q, service=%s", query, result.ServiceName)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
