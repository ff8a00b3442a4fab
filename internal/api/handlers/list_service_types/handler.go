package list_service_types

import (
	"net/http"

	"github.com/easybook/EB-BookingService/internal/api/handlers"
	"github.com/easybook/EB-BookingService/internal/domain"
)

// ServiceTypeResponse HTTP response model
type ServiceTypeResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ServiceTypeListResponse каталог услуг
type ServiceTypeListResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"service_types"`
}

type Handler struct {
	service PaymentsService
	logger  Logger
}

func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/service-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceTypes, err := h.service.ListServiceTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /service-types - Failed to list service types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	resp := &ServiceTypeListResponse{ServiceTypes: make([]ServiceTypeResponse, 0, len(serviceTypes))}
	for _, st := range serviceTypes {
		resp.ServiceTypes = append(resp.ServiceTypes, fromDomain(st))
	}

	h.logger.Info("GET /service-types - Returned %d service types", len(resp.ServiceTypes))
	handlers.RespondJSON(w, http.StatusOK, resp)
}

func fromDomain(st *domain.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ID:    st.ID,
		Name:  st.Name,
		Price: st.Price,
	}
}
