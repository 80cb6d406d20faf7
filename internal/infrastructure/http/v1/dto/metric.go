package dto

import (
	"dentman/internal/domain/catalogs/metric"
)

// --- Request DTOs ---

// CreateMetricRequest is the request body for creating a metric.
type CreateMetricRequest struct {
	Code        string      `json:"code"`
	Name        string      `json:"name" binding:"required"`
	Kind        metric.Kind `json:"kind" binding:"required"`
	Symbol      string      `json:"symbol" binding:"required"`
	Description *string     `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateMetricRequest) ToEntity() *metric.Metric {
	m := metric.NewMetric(r.Code, r.Name, r.Symbol, r.Kind)
	m.Description = r.Description
	return m
}

// UpdateMetricRequest is the request body for updating a metric.
type UpdateMetricRequest struct {
	Code        string      `json:"code"`
	Name        string      `json:"name" binding:"required"`
	Kind        metric.Kind `json:"kind" binding:"required"`
	Symbol      string      `json:"symbol" binding:"required"`
	Description *string     `json:"description"`
	Version     int         `json:"version" binding:"required"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMetricRequest) ApplyTo(m *metric.Metric) {
	m.Code = r.Code
	m.Name = r.Name
	m.Kind = r.Kind
	m.Symbol = r.Symbol
	m.Description = r.Description
	m.Version = r.Version
}

// --- Response DTOs ---

// MetricResponse is the response body for a metric.
type MetricResponse struct {
	ID           string      `json:"id"`
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	Kind         metric.Kind `json:"kind"`
	Symbol       string      `json:"symbol"`
	Description  *string     `json:"description,omitempty"`
	DeletionMark bool        `json:"deletionMark"`
	Version      int         `json:"version"`
}

// FromMetric creates response DTO from domain entity.
func FromMetric(m *metric.Metric) *MetricResponse {
	return &MetricResponse{
		ID:           m.ID.String(),
		Code:         m.Code,
		Name:         m.Name,
		Kind:         m.Kind,
		Symbol:       m.Symbol,
		Description:  m.Description,
		DeletionMark: m.DeletionMark,
		Version:      m.Version,
	}
}
