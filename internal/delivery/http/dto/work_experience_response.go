package dto

import (
	"member-profile/internal/repository"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type WorkExperienceResponse struct {
	ID             uuid.UUID  `json:"id"`
	CompanyID      *uuid.UUID `json:"company_id"`
	Title          string     `json:"title"`
	EmploymentType string     `json:"employment_type"`
	LocationType   string     `json:"location_type"`
	StartDate      string     `json:"start_date"`
	EndDate        *string    `json:"end_date"`
	IsCurrent      bool       `json:"is_current"`
}

func NewWorkExperienceResponse(w repository.WorkExperience) WorkExperienceResponse {
	resp := WorkExperienceResponse{
		ID:             w.ID,
		CompanyID:      w.CompanyID,
		Title:          w.Title,
		EmploymentType: w.EmploymentType,
		LocationType:   w.LocationType,
		StartDate:      w.StartDate.Format(dateLayout),
		IsCurrent:      w.EndDate == nil,
	}
	if w.EndDate != nil {
		endDate := w.EndDate.Format(dateLayout)
		resp.EndDate = &endDate
	}
	return resp
}

func NewWorkExperienceResponses(items []repository.WorkExperience) []WorkExperienceResponse {
	out := make([]WorkExperienceResponse, 0, len(items))
	for _, w := range items {
		out = append(out, NewWorkExperienceResponse(w))
	}
	return out
}
