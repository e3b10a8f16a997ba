package repository

import (
	"context"
	"database/sql"
	"errors"

	"member-profile/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company not found")

type Company struct {
	ID             uuid.UUID
	LinkedInNameID string
	CrunchbaseID   string
	Name           string
	Description    *string
	ImageURL       *string
}

type CompanyRepository interface {
	FindByID(ctx context.Context, companyID uuid.UUID) (Company, error)

	// FindIDByLinkedInNameID resolves a LinkedIn universal name id to the
	// local company id. Runs on the given Querier so callers can read
	// within their own transaction.
	FindIDByLinkedInNameID(ctx context.Context, q database.Querier, nameID string) (uuid.UUID, error)

	// Create inserts the company, skipping the insert when another row
	// already holds the same linkedin_name_id. Returns the number of rows
	// written: zero means a concurrent insert won.
	Create(ctx context.Context, q database.Querier, c Company) (int64, error)
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

func (r *PostgresCompanyRepository) FindByID(ctx context.Context, companyID uuid.UUID) (Company, error) {
	var c Company
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(linkedin_name_id, ''), crunchbase_id, name, description, image_url
		 FROM companies
		 WHERE id = $1`,
		companyID,
	)
	if err := row.Scan(&c.ID, &c.LinkedInNameID, &c.CrunchbaseID, &c.Name, &c.Description, &c.ImageURL); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Company{}, ErrCompanyNotFound
		}
		return Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) FindIDByLinkedInNameID(ctx context.Context, q database.Querier, nameID string) (uuid.UUID, error) {
	var id uuid.UUID
	row := q.QueryRow(ctx,
		`SELECT id FROM companies WHERE linkedin_name_id = $1`,
		nameID,
	)
	if err := row.Scan(&id); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, ErrCompanyNotFound
		}
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresCompanyRepository) Create(ctx context.Context, q database.Querier, c Company) (int64, error) {
	return q.Exec(ctx,
		`INSERT INTO companies (id, linkedin_name_id, crunchbase_id, name, description, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (linkedin_name_id) WHERE linkedin_name_id IS NOT NULL DO NOTHING`,
		c.ID,
		c.LinkedInNameID,
		c.CrunchbaseID,
		c.Name,
		c.Description,
		c.ImageURL,
	)
}

var _ CompanyRepository = (*PostgresCompanyRepository)(nil)
