package usecase

import (
	"context"
	"log"
	"time"

	"member-profile/internal/database"
	"member-profile/internal/infrastructure/jobs"
	"member-profile/internal/repository"

	"github.com/google/uuid"
)

// EventWorkExperienceAdded is the job event emitted after a successful
// import. Consumers receive {studentId, workExperienceId}.
const EventWorkExperienceAdded = "work_experience.added"

type AddWorkExperienceFromLinkedInInput struct {
	ExperienceIndex int
	EmploymentType  string
	LocationType    string
}

type workExperienceAddedPayload struct {
	StudentID        uuid.UUID `json:"studentId"`
	WorkExperienceID uuid.UUID `json:"workExperienceId"`
}

type WorkExperienceUsecase interface {
	// AddWorkExperienceFromLinkedIn materializes one experience from the
	// member's LinkedIn profile as a local work experience row, resolving
	// the company on the way. Company resolution and the experience insert
	// share one transaction; partial writes never survive.
	AddWorkExperienceFromLinkedIn(ctx context.Context, memberID uuid.UUID, in AddWorkExperienceFromLinkedInInput) (uuid.UUID, error)

	ListWorkExperiences(ctx context.Context, memberID uuid.UUID) ([]repository.WorkExperience, error)
}

type WorkExperience struct {
	db          database.DB
	profiles    ProfileUsecase
	resolver    *CompanyResolver
	experiences repository.WorkExperienceRepository
	queue       jobs.Queue
	logger      *log.Logger
}

func NewWorkExperienceUsecase(
	db database.DB,
	profiles ProfileUsecase,
	resolver *CompanyResolver,
	experiences repository.WorkExperienceRepository,
	queue jobs.Queue,
	logger *log.Logger,
) *WorkExperience {
	return &WorkExperience{
		db:          db,
		profiles:    profiles,
		resolver:    resolver,
		experiences: experiences,
		queue:       queue,
		logger:      logger,
	}
}

func (u *WorkExperience) AddWorkExperienceFromLinkedIn(ctx context.Context, memberID uuid.UUID, in AddWorkExperienceFromLinkedInInput) (uuid.UUID, error) {
	if !isValidEmploymentType(in.EmploymentType) {
		return uuid.Nil, ErrInvalidInput
	}
	if !isValidLocationType(in.LocationType) {
		return uuid.Nil, ErrInvalidInput
	}

	profile, err := u.profiles.GetLinkedInProfile(ctx, memberID)
	if err != nil {
		return uuid.Nil, err
	}
	if profile == nil {
		return uuid.Nil, ErrProfileNotAvailable
	}

	if in.ExperienceIndex < 0 || in.ExperienceIndex >= len(profile.Experiences) {
		return uuid.Nil, ErrExperienceIndexOutOfRange
	}
	experience := profile.Experiences[in.ExperienceIndex]

	workExperienceID := uuid.New()

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback(ctx)
		}
	}()

	companyID, err := u.resolver.SaveCompanyIfNecessary(ctx, tx, experience.CompanyNameID())
	if err != nil {
		return uuid.Nil, err
	}

	var endDate *time.Time
	if experience.EndsAt != nil {
		t := experience.EndsAt.Time()
		endDate = &t
	}

	if err := u.experiences.Create(ctx, tx, repository.WorkExperience{
		ID:             workExperienceID,
		StudentID:      memberID,
		CompanyID:      companyID,
		Title:          experience.Title,
		EmploymentType: in.EmploymentType,
		LocationType:   in.LocationType,
		StartDate:      experience.StartsAt.Time(),
		EndDate:        endDate,
	}); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}
	committed = true

	// Emission happens strictly after commit; a failed emit never takes
	// the committed import down with it.
	if err := u.queue.Enqueue(ctx, EventWorkExperienceAdded, workExperienceAddedPayload{
		StudentID:        memberID,
		WorkExperienceID: workExperienceID,
	}); err != nil && u.logger != nil {
		u.logger.Printf("[WorkExperience] event emit failed | member_id=%s work_experience_id=%s err=%v", memberID, workExperienceID, err)
	}

	return workExperienceID, nil
}

func (u *WorkExperience) ListWorkExperiences(ctx context.Context, memberID uuid.UUID) ([]repository.WorkExperience, error) {
	return u.experiences.ListByStudentID(ctx, memberID)
}

var _ WorkExperienceUsecase = (*WorkExperience)(nil)
