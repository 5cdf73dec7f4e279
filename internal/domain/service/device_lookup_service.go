package service

import (
	"context"

	"booking/internal/domain/entity"
)

// DeviceLookupService queries an external catalogue for the capabilities of a device.
// Implementations make exactly one call per invocation and do not retry or cache.
type DeviceLookupService interface {
	Lookup(ctx context.Context, brand, device string) (*entity.DeviceSpecs, error)
}
