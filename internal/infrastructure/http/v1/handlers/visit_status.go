package handlers

import (
	"dentman/internal/domain/catalogs/visitstatus"
	"dentman/internal/infrastructure/http/v1/dto"
)

// VisitStatusHTTPHandler is a configured generic catalog handler for
// visit statuses.
type VisitStatusHTTPHandler = CatalogHandler[
	*visitstatus.VisitStatus,
	dto.CreateVisitStatusRequest,
	dto.UpdateVisitStatusRequest,
]

// NewVisitStatusHandler wires the generic catalog handler for the visit
// status catalog.
func NewVisitStatusHandler(
	base *BaseHandler,
	service *visitstatus.Service,
) *VisitStatusHTTPHandler {

	config := CatalogHandlerConfig[
		*visitstatus.VisitStatus,
		dto.CreateVisitStatusRequest,
		dto.UpdateVisitStatusRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "visit-status",

		MapCreateDTO: func(req dto.CreateVisitStatusRequest) *visitstatus.VisitStatus {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateVisitStatusRequest, existing *visitstatus.VisitStatus) *visitstatus.VisitStatus {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *visitstatus.VisitStatus) any {
			return dto.FromVisitStatus(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
