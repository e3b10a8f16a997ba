package repository

import (
	"context"
	"database/sql"
	"errors"

	"member-profile/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMemberNotFound = errors.New("member not found")

type Member struct {
	ID          uuid.UUID
	Email       string
	FirstName   string
	LastName    string
	LinkedInURL *string
}

type MemberRepository interface {
	FindByID(ctx context.Context, memberID uuid.UUID) (Member, error)

	// GetLinkedInURL returns the member's stored LinkedIn profile URL, or
	// empty when the member has none on file.
	GetLinkedInURL(ctx context.Context, memberID uuid.UUID) (string, error)
}

type PostgresMemberRepository struct {
	db database.DB
}

func NewPostgresMemberRepository(db database.DB) *PostgresMemberRepository {
	return &PostgresMemberRepository{db: db}
}

func (r *PostgresMemberRepository) FindByID(ctx context.Context, memberID uuid.UUID) (Member, error) {
	var m Member
	row := r.db.QueryRow(ctx,
		`SELECT id, email, first_name, last_name, linkedin_url
		 FROM students
		 WHERE id = $1`,
		memberID,
	)
	if err := row.Scan(&m.ID, &m.Email, &m.FirstName, &m.LastName, &m.LinkedInURL); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Member{}, ErrMemberNotFound
		}
		return Member{}, err
	}
	return m, nil
}

func (r *PostgresMemberRepository) GetLinkedInURL(ctx context.Context, memberID uuid.UUID) (string, error) {
	var linkedInURL *string
	row := r.db.QueryRow(ctx,
		`SELECT linkedin_url FROM students WHERE id = $1`,
		memberID,
	)
	if err := row.Scan(&linkedInURL); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return "", ErrMemberNotFound
		}
		return "", err
	}
	if linkedInURL == nil {
		return "", nil
	}
	return *linkedInURL, nil
}

var _ MemberRepository = (*PostgresMemberRepository)(nil)
