package dto

import (
	"member-profile/internal/infrastructure/proxycurl"
)

const monthLayout = "2006-01"

type LinkedInExperienceResponse struct {
	Index       int     `json:"index"`
	Company     string  `json:"company"`
	Title       string  `json:"title"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	StartsAt    string  `json:"starts_at"`
	EndsAt      *string `json:"ends_at"`
	IsCurrent   bool    `json:"is_current"`
}

func NewLinkedInExperienceResponses(profile *proxycurl.LinkedInProfile) []LinkedInExperienceResponse {
	if profile == nil {
		return []LinkedInExperienceResponse{}
	}

	out := make([]LinkedInExperienceResponse, 0, len(profile.Experiences))
	for i, exp := range profile.Experiences {
		item := LinkedInExperienceResponse{
			Index:       i,
			Company:     exp.Company,
			Title:       exp.Title,
			Location:    exp.Location,
			Description: exp.Description,
			IsCurrent:   exp.IsCurrent(),
		}
		if exp.StartsAt != nil {
			item.StartsAt = exp.StartsAt.Time().Format(monthLayout)
		}
		if exp.EndsAt != nil {
			endsAt := exp.EndsAt.Time().Format(monthLayout)
			item.EndsAt = &endsAt
		}
		out = append(out, item)
	}
	return out
}
