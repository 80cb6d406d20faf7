package domain

import "context"

// AuditRecorder records entity change entries for later review.
// The postgres implementation compresses large payloads.
type AuditRecorder interface {
	Record(ctx context.Context, entityType, entityID, action string, payload any) error
}
