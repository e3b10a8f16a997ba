package dto

import (
	"member-profile/internal/repository"

	"github.com/google/uuid"
)

type CompanyResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	LinkedInNameID string    `json:"linkedin_name_id"`
	Description    *string   `json:"description"`
	ImageURL       *string   `json:"image_url"`
}

func NewCompanyResponse(c repository.Company) CompanyResponse {
	return CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		LinkedInNameID: c.LinkedInNameID,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
	}
}
