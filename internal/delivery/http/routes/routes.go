package routes

import (
	"member-profile/internal/delivery/http/handler"
	v1 "member-profile/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	Health         *handler.HealthHandler
	Profile        *handler.ProfileHandler
	WorkExperience *handler.WorkExperienceHandler
	Company        *handler.CompanyHandler
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	if deps.Health != nil {
		deps.Health.RegisterRoutes(app)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), v1.Handlers{
		Profile:        deps.Profile,
		WorkExperience: deps.WorkExperience,
		Company:        deps.Company,
	})
}
