package handlers

import (
	"dentman/internal/domain/catalogs/resource"
	"dentman/internal/infrastructure/http/v1/dto"
)

// ResourceHTTPHandler is a configured generic catalog handler for resources.
type ResourceHTTPHandler = CatalogHandler[
	*resource.Resource,
	dto.CreateResourceRequest,
	dto.UpdateResourceRequest,
]

// NewResourceHandler wires the generic catalog handler for the resource
// catalog. Stock movements themselves go through the resource update
// endpoints, not through here.
func NewResourceHandler(
	base *BaseHandler,
	service *resource.Service,
) *ResourceHTTPHandler {

	config := CatalogHandlerConfig[
		*resource.Resource,
		dto.CreateResourceRequest,
		dto.UpdateResourceRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "resource",

		MapCreateDTO: func(req dto.CreateResourceRequest) *resource.Resource {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateResourceRequest, existing *resource.Resource) *resource.Resource {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *resource.Resource) any {
			return dto.FromResource(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
