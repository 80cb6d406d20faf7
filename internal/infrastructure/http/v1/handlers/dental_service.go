package handlers

import (
	"dentman/internal/domain/catalogs/dentalservice"
	"dentman/internal/infrastructure/http/v1/dto"
)

// DentalServiceHTTPHandler is a configured generic catalog handler for
// dental services.
type DentalServiceHTTPHandler = CatalogHandler[
	*dentalservice.DentalService,
	dto.CreateDentalServiceRequest,
	dto.UpdateDentalServiceRequest,
]

// NewDentalServiceHandler wires the generic catalog handler for the
// dental service catalog.
func NewDentalServiceHandler(
	base *BaseHandler,
	service *dentalservice.Service,
) *DentalServiceHTTPHandler {

	config := CatalogHandlerConfig[
		*dentalservice.DentalService,
		dto.CreateDentalServiceRequest,
		dto.UpdateDentalServiceRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "dental-service",

		MapCreateDTO: func(req dto.CreateDentalServiceRequest) *dentalservice.DentalService {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateDentalServiceRequest, existing *dentalservice.DentalService) *dentalservice.DentalService {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *dentalservice.DentalService) any {
			return dto.FromDentalService(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
