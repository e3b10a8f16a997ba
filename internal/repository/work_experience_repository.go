package repository

import (
	"context"
	"time"

	"member-profile/internal/database"

	"github.com/google/uuid"
)

type WorkExperience struct {
	ID             uuid.UUID
	StudentID      uuid.UUID
	CompanyID      *uuid.UUID
	Title          string
	EmploymentType string
	LocationType   string
	StartDate      time.Time

	// EndDate nil means the role is current.
	EndDate *time.Time
}

type WorkExperienceRepository interface {
	// Create inserts the experience on the given Querier, typically the
	// transaction that also resolved the company.
	Create(ctx context.Context, q database.Querier, w WorkExperience) error

	ListByStudentID(ctx context.Context, studentID uuid.UUID) ([]WorkExperience, error)
}

type PostgresWorkExperienceRepository struct {
	db database.DB
}

func NewPostgresWorkExperienceRepository(db database.DB) *PostgresWorkExperienceRepository {
	return &PostgresWorkExperienceRepository{db: db}
}

func (r *PostgresWorkExperienceRepository) Create(ctx context.Context, q database.Querier, w WorkExperience) error {
	_, err := q.Exec(ctx,
		`INSERT INTO work_experiences (id, student_id, company_id, title, employment_type, location_type, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		w.ID,
		w.StudentID,
		w.CompanyID,
		w.Title,
		w.EmploymentType,
		w.LocationType,
		w.StartDate,
		w.EndDate,
	)
	return err
}

func (r *PostgresWorkExperienceRepository) ListByStudentID(ctx context.Context, studentID uuid.UUID) ([]WorkExperience, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, student_id, company_id, title, employment_type, location_type, start_date, end_date
		 FROM work_experiences
		 WHERE student_id = $1
		 ORDER BY start_date DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]WorkExperience, 0)
	for rows.Next() {
		var w WorkExperience
		if err := rows.Scan(&w.ID, &w.StudentID, &w.CompanyID, &w.Title, &w.EmploymentType, &w.LocationType, &w.StartDate, &w.EndDate); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ WorkExperienceRepository = (*PostgresWorkExperienceRepository)(nil)
