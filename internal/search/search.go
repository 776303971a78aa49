// Package search implements the device filter used by the pool and search views.
package search

import (
	"strings"

	"github.com/kurochkinivan/device_warehouse/internal/domain"
)

// Filter returns the devices whose name, type, asset number or serial number
// contains query, ignoring case. Input order is preserved and an empty query
// returns devices unchanged.
func Filter(query string, devices []domain.Device) []domain.Device {
	query = strings.ToLower(query)
	if query == "" {
		return devices
	}

	result := make([]domain.Device, 0, len(devices))
	for _, device := range devices {
		if Matches(query, &device) {
			result = append(result, device)
		}
	}

	return result
}

// Matches expects an already lowercased query.
func Matches(query string, device *domain.Device) bool {
	for _, field := range []string{
		device.Name,
		device.Type,
		device.AssetNumber,
		device.SerialNumber,
	} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}
