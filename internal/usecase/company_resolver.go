package usecase

import (
	"context"
	"errors"
	"log"

	"member-profile/internal/database"
	"member-profile/internal/infrastructure/cache"
	"member-profile/internal/infrastructure/proxycurl"
	"member-profile/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// CompanyResolver maps a LinkedIn universal name id onto a local company
// row, creating the row on first sight. It is the only writer of companies
// in the import pipeline.
type CompanyResolver struct {
	companies repository.CompanyRepository
	store     cache.Store
	api       CompanyAPI
	logger    *log.Logger
}

func NewCompanyResolver(companies repository.CompanyRepository, store cache.Store, api CompanyAPI, logger *log.Logger) *CompanyResolver {
	return &CompanyResolver{companies: companies, store: store, api: api, logger: logger}
}

// SaveCompanyIfNecessary resolves nameID to a local company id inside the
// caller's transaction. An empty nameID is a no-op: a work experience may
// have no resolvable company, and the import proceeds without one.
//
// Two concurrent resolutions of the same new company may both reach the
// insert; the uniqueness constraint on linkedin_name_id settles the race and
// the loser re-queries for the winner's id.
func (r *CompanyResolver) SaveCompanyIfNecessary(ctx context.Context, q database.Querier, nameID string) (*uuid.UUID, error) {
	if nameID == "" {
		return nil, nil
	}

	existingID, err := r.companies.FindIDByLinkedInNameID(ctx, q, nameID)
	if err == nil {
		return &existingID, nil
	}
	if !errors.Is(err, repository.ErrCompanyNotFound) {
		return nil, err
	}

	external, err := r.getLinkedInCompany(ctx, nameID)
	if err != nil {
		return nil, err
	}
	if external == nil {
		return nil, ErrCompanyNotResolvable
	}

	companyID := uuid.New()
	rows, err := r.companies.Create(ctx, q, repository.Company{
		ID:             companyID,
		LinkedInNameID: nameID,
		Name:           external.Name,
		Description:    external.Description,
		ImageURL:       &external.ProfilePicURL,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return r.findRaceWinner(ctx, q, nameID)
		}
		return nil, err
	}
	if rows == 0 {
		return r.findRaceWinner(ctx, q, nameID)
	}

	return &companyID, nil
}

// GetLinkedInCompany returns the provider's company record, served from
// cache when fresh. Nil means the provider could not supply the company.
func (r *CompanyResolver) GetLinkedInCompany(ctx context.Context, nameID string) (*proxycurl.LinkedInCompany, error) {
	return r.getLinkedInCompany(ctx, nameID)
}

func (r *CompanyResolver) getLinkedInCompany(ctx context.Context, nameID string) (*proxycurl.LinkedInCompany, error) {
	entry := cache.NewEntry(r.store, companyCacheKey(nameID), proxycurl.ValidateCompany)

	if company := entry.Get(ctx); company != nil {
		return company, nil
	}

	company, err := r.api.Company(ctx, nameID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}

	if err := entry.Set(ctx, company, companyCacheTTL); err != nil && r.logger != nil {
		r.logger.Printf("[CompanyResolver] cache write failed | name_id=%s err=%v", nameID, err)
	}

	return company, nil
}

func (r *CompanyResolver) findRaceWinner(ctx context.Context, q database.Querier, nameID string) (*uuid.UUID, error) {
	winnerID, err := r.companies.FindIDByLinkedInNameID(ctx, q, nameID)
	if err != nil {
		return nil, err
	}
	if r.logger != nil {
		r.logger.Printf("[CompanyResolver] lost first-insert race | name_id=%s winner_id=%s", nameID, winnerID)
	}
	return &winnerID, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
