package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"member-profile/internal/infrastructure/cache"
	"member-profile/internal/infrastructure/proxycurl"
	"member-profile/internal/repository"

	"github.com/google/uuid"
)

const (
	// Profiles move often enough that a week is the longest we want to
	// serve them without refetching.
	profileCacheTTL = 7 * 24 * time.Hour

	// Companies change rarely.
	companyCacheTTL = 365 * 24 * time.Hour
)

func profileCacheKey(memberID uuid.UUID) string {
	return "getLinkedInProfile:" + memberID.String()
}

func companyCacheKey(nameID string) string {
	return "getLinkedInCompany:" + nameID
}

// ProfileAPI is the slice of the Proxycurl client the profile usecase needs.
type ProfileAPI interface {
	Profile(ctx context.Context, linkedInProfileURL string) (*proxycurl.LinkedInProfile, error)
}

// CompanyAPI is the slice used by company resolution.
type CompanyAPI interface {
	Company(ctx context.Context, nameID string) (*proxycurl.LinkedInCompany, error)
}

type ProfileUsecase interface {
	// GetLinkedInProfile returns the member's enriched profile, or nil when
	// enrichment is unavailable: the member has no stored LinkedIn URL, or
	// the provider could not be reached.
	GetLinkedInProfile(ctx context.Context, memberID uuid.UUID) (*proxycurl.LinkedInProfile, error)
}

type Profile struct {
	store   cache.Store
	members repository.MemberRepository
	api     ProfileAPI
	logger  *log.Logger
}

func NewProfileUsecase(store cache.Store, members repository.MemberRepository, api ProfileAPI, logger *log.Logger) *Profile {
	return &Profile{store: store, members: members, api: api, logger: logger}
}

func (u *Profile) GetLinkedInProfile(ctx context.Context, memberID uuid.UUID) (*proxycurl.LinkedInProfile, error) {
	entry := cache.NewEntry(u.store, profileCacheKey(memberID), proxycurl.ValidateProfile)

	if profile := entry.Get(ctx); profile != nil {
		return profile, nil
	}

	linkedInURL, err := u.members.GetLinkedInURL(ctx, memberID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if linkedInURL == "" {
		return nil, nil
	}

	profile, err := u.api.Profile(ctx, linkedInURL)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	if err := entry.Set(ctx, profile, profileCacheTTL); err != nil && u.logger != nil {
		u.logger.Printf("[Profile] cache write failed | member_id=%s err=%v", memberID, err)
	}

	return profile, nil
}

var _ ProfileUsecase = (*Profile)(nil)
