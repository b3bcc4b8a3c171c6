package dto

import (
	"github.com/traqbank/backoffice/internal/core/domain"
)

// CreatePersonRequest defines the data needed to create a new person.
type CreatePersonRequest struct {
	Name     string `json:"name" binding:"max=50"`
	Surname  string `json:"surname" binding:"max=50"`
	IDNumber string `json:"idNumber" binding:"required,max=50"`
}

// UpdatePersonRequest defines the data allowed when editing a person.
type UpdatePersonRequest struct {
	Name     string `json:"name" binding:"max=50"`
	Surname  string `json:"surname" binding:"max=50"`
	IDNumber string `json:"idNumber" binding:"required,max=50"`
}

// PersonResponse defines the data returned for a person.
type PersonResponse struct {
	Code     int64  `json:"code"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	IDNumber string `json:"idNumber"`
}

// PersonDetailResponse is a person together with their accounts and statuses.
type PersonDetailResponse struct {
	PersonResponse
	Accounts []AccountResponse `json:"accounts"`
}

// ListPersonsParams defines query parameters for the person listing.
type ListPersonsParams struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
}

// ListPersonsResponse wraps one page of persons.
type ListPersonsResponse struct {
	Persons    []PersonResponse `json:"persons"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// ToPersonResponse converts a domain.Person to PersonResponse.
func ToPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{
		Code:     p.Code,
		Name:     p.Name,
		Surname:  p.Surname,
		IDNumber: p.IDNumber,
	}
}
