package handler

import (
	"errors"

	"member-profile/internal/delivery/http/dto"
	"member-profile/internal/delivery/http/middleware"
	"member-profile/internal/infrastructure/proxycurl"
	"member-profile/internal/pkg/response"
	"member-profile/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/members/:memberId/linkedin-experiences", h.ListLinkedInExperiences)
}

// ListLinkedInExperiences returns the member's LinkedIn experiences so a
// client can offer them for import, dates condensed to year-month.
func (h *ProfileHandler) ListLinkedInExperiences(c fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid member id", nil, err)
	}

	profile, err := h.uc.GetLinkedInProfile(c.Context(), memberID)
	if err != nil {
		if errors.Is(err, proxycurl.ErrSchemaMismatch) {
			return middleware.NewAppError(fiber.StatusBadGateway, "LinkedIn provider returned an unexpected response", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	if profile == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "LinkedIn profile not available", nil, nil)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLinkedInExperienceResponses(profile))
}
