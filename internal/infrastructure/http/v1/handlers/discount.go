package handlers

import (
	"dentman/internal/domain/catalogs/discount"
	"dentman/internal/infrastructure/http/v1/dto"
)

// DiscountHTTPHandler is a configured generic catalog handler for discounts.
type DiscountHTTPHandler = CatalogHandler[
	*discount.Discount,
	dto.CreateDiscountRequest,
	dto.UpdateDiscountRequest,
]

// NewDiscountHandler wires the generic catalog handler for the discount
// catalog. The validity verdict and usage counter are service-owned and
// come back read-only in responses.
func NewDiscountHandler(
	base *BaseHandler,
	service *discount.Service,
) *DiscountHTTPHandler {

	config := CatalogHandlerConfig[
		*discount.Discount,
		dto.CreateDiscountRequest,
		dto.UpdateDiscountRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "discount",

		MapCreateDTO: func(req dto.CreateDiscountRequest) *discount.Discount {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateDiscountRequest, existing *discount.Discount) *discount.Discount {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *discount.Discount) any {
			return dto.FromDiscount(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
