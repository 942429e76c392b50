package bulk_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/HRC-CalendarService/internal/api/handlers"
	"github.com/m04kA/HRC-CalendarService/internal/api/middleware"
	bulkAvailability "github.com/m04kA/HRC-CalendarService/internal/usecase/bulk_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат: даты ожидаются как YYYY-MM-DD, время как HH:MM"
	msgRoleNotAllowed     = "генерировать доступность может только разработчик"
	msgWindowTooShort     = "дневное окно должно покрывать не менее 30 минут"
	msgInvalidRange       = "endDate не может предшествовать startDate"
)

type Handler struct {
	useCase BulkAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase BulkAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability/bulk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	role, ok := middleware.RoleFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgRoleNotAllowed)
		return
	}

	var req BulkAddRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability/bulk - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(role)
	if err != nil {
		h.logger.Warn("POST /availability/bulk - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bulkAvailability.ErrRoleNotAllowed):
			h.logger.Warn("POST /availability/bulk - role=%s rejected", role)
			handlers.RespondForbidden(w, msgRoleNotAllowed)

		case errors.Is(err, bulkAvailability.ErrWindowTooShort):
			handlers.RespondBadRequest(w, msgWindowTooShort)

		case errors.Is(err, bulkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("POST /availability/bulk - failed to generate slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability/bulk - %d slots inserted by role=%s", result.Inserted, role)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(time.Now(), result))
}
