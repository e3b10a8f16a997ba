package handler

import (
	"errors"

	"member-profile/internal/delivery/http/dto"
	"member-profile/internal/delivery/http/middleware"
	"member-profile/internal/pkg/response"
	"member-profile/internal/repository"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	companies repository.CompanyRepository
}

func NewCompanyHandler(companies repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/companies/:companyId", h.GetCompany)
}

func (h *CompanyHandler) GetCompany(c fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", nil, err)
	}

	company, err := h.companies.FindByID(c.Context(), companyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(company))
}
