package v1

import (
	"member-profile/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Profile        *handler.ProfileHandler
	WorkExperience *handler.WorkExperienceHandler
	Company        *handler.CompanyHandler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Profile != nil {
		h.Profile.RegisterRoutes(r)
	}
	if h.WorkExperience != nil {
		h.WorkExperience.RegisterRoutes(r)
	}
	if h.Company != nil {
		h.Company.RegisterRoutes(r)
	}
}
