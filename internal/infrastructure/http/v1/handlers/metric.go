package handlers

import (
	"dentman/internal/domain/catalogs/metric"
	"dentman/internal/infrastructure/http/v1/dto"
)

// MetricHTTPHandler is a configured generic catalog handler for metrics.
type MetricHTTPHandler = CatalogHandler[
	*metric.Metric,
	dto.CreateMetricRequest,
	dto.UpdateMetricRequest,
]

// NewMetricHandler wires the generic catalog handler for the metric catalog.
func NewMetricHandler(
	base *BaseHandler,
	service *metric.Service,
) *MetricHTTPHandler {

	config := CatalogHandlerConfig[
		*metric.Metric,
		dto.CreateMetricRequest,
		dto.UpdateMetricRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "metric",

		MapCreateDTO: func(req dto.CreateMetricRequest) *metric.Metric {
			return req.ToEntity()
		},

		MapUpdateDTO: func(req dto.UpdateMetricRequest, existing *metric.Metric) *metric.Metric {
			req.ApplyTo(existing)
			return existing
		},

		MapToDTO: func(entity *metric.Metric) any {
			return dto.FromMetric(entity)
		},
	}

	return NewCatalogHandler(base, config)
}
