// Package model - API response types
package model

import "time"

// FixedVersionsResponse is the success payload for a fixed-version lookup.
// Versions is deduplicated and sorted ascending before construction.
type FixedVersionsResponse struct {
	Name      string   `json:"name"`
	Versions  []string `json:"versions"`
	Timestamp string   `json:"timestamp"`
}

// NewFixedVersionsResponse wraps a version list with the package name and a
// timestamp taken at construction time, not at request arrival
func NewFixedVersionsResponse(name string, versions []string) *FixedVersionsResponse {
	return &FixedVersionsResponse{
		Name:      name,
		Versions:  versions,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// ErrorResponse is the envelope returned for non-success statuses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
