package dto

import (
	"github.com/traqbank/backoffice/internal/core/domain"
)

// StatusResponse defines the data returned for a status row.
type StatusResponse struct {
	Code int16  `json:"code"`
	Name string `json:"name"`
}

// ToStatusResponse converts a domain.Status to StatusResponse.
func ToStatusResponse(s *domain.Status) StatusResponse {
	return StatusResponse{
		Code: int16(s.Code),
		Name: s.Name,
	}
}

// ToListStatusResponse converts a slice of domain.Status to responses.
func ToListStatusResponse(statuses []domain.Status) []StatusResponse {
	res := make([]StatusResponse, len(statuses))
	for i := range statuses {
		res[i] = ToStatusResponse(&statuses[i])
	}
	return res
}
