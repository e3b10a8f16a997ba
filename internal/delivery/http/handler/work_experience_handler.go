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

type WorkExperienceHandler struct {
	uc usecase.WorkExperienceUsecase
}

type importWorkExperienceRequest struct {
	ExperienceIndex int    `json:"experience_index"`
	EmploymentType  string `json:"employment_type"`
	LocationType    string `json:"location_type"`
}

type importWorkExperienceResponse struct {
	WorkExperienceID uuid.UUID `json:"work_experience_id"`
}

func NewWorkExperienceHandler(uc usecase.WorkExperienceUsecase) *WorkExperienceHandler {
	return &WorkExperienceHandler{uc: uc}
}

func (h *WorkExperienceHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/members/:memberId/work-experiences", h.ListWorkExperiences)
	r.Post("/members/:memberId/work-experiences/linkedin", h.ImportFromLinkedIn)
}

func (h *WorkExperienceHandler) ListWorkExperiences(c fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid member id", nil, err)
	}

	items, err := h.uc.ListWorkExperiences(c.Context(), memberID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkExperienceResponses(items))
}

func (h *WorkExperienceHandler) ImportFromLinkedIn(c fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("memberId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid member id", nil, err)
	}

	var req importWorkExperienceRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	id, err := h.uc.AddWorkExperienceFromLinkedIn(c.Context(), memberID, usecase.AddWorkExperienceFromLinkedInInput{
		ExperienceIndex: req.ExperienceIndex,
		EmploymentType:  req.EmploymentType,
		LocationType:    req.LocationType,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid employment or location type", nil, err)
		case errors.Is(err, usecase.ErrProfileNotAvailable):
			return middleware.NewAppError(fiber.StatusNotFound, "LinkedIn profile not available", nil, err)
		case errors.Is(err, usecase.ErrExperienceIndexOutOfRange):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Selected experience no longer exists, refresh and retry", nil, err)
		case errors.Is(err, usecase.ErrCompanyNotResolvable):
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Company could not be resolved, try again later", nil, err)
		case errors.Is(err, proxycurl.ErrSchemaMismatch):
			return middleware.NewAppError(fiber.StatusBadGateway, "LinkedIn provider returned an unexpected response", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, importWorkExperienceResponse{WorkExperienceID: id})
}
