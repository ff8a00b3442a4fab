package get_next_shift

import (
	"net/http"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/api/middleware"
	"github.com/easybook/EB-BookingService/internal/domain"
)

const (
	msgMissingUserID = "отсутствует идентификатор пользователя"
	msgEmployeeOnly  = "операция доступна только сотруднику"
)

type Handler struct {
	service ShiftsService
	logger  Logger
}

func NewHandler(service ShiftsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shifts/next
// Возвращает дату ближайшей смены текущего сотрудника; date=null, если смен нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /shifts/next - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	role, _ := middleware.GetUserRole(r.Context())
	if role != domain.RoleEmployee {
		h.logger.Warn("GET /shifts/next - Forbidden for role=%s", role)
		handlers.RespondForbidden(w, msgEmployeeOnly)
		return
	}

	resp, err := h.service.NextShiftDate(r.Context(), employeeID)
	if err != nil {
		h.logger.Error("GET /shifts/next - Failed: employee_id=%d, error=%v", employeeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shifts/next - Returned next shift for employee_id=%d", employeeID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
