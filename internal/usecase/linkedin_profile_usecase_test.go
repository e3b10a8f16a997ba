package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"member-profile/internal/infrastructure/proxycurl"
	"member-profile/internal/repository"

	"github.com/google/uuid"
)

// fakeStore is an in-memory cache.Store shared by the usecase tests.
type fakeStore struct {
	values map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string][]byte)}
}

func (s *fakeStore) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := s.values[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (s *fakeStore) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = b
	return nil
}

func (s *fakeStore) Delete(_ context.Context, key string) error {
	delete(s.values, key)
	return nil
}

type fakeMemberRepo struct {
	linkedInURL string
	findErr     error
}

func (f fakeMemberRepo) FindByID(context.Context, uuid.UUID) (repository.Member, error) {
	return repository.Member{}, repository.ErrMemberNotFound
}

func (f fakeMemberRepo) GetLinkedInURL(context.Context, uuid.UUID) (string, error) {
	if f.findErr != nil {
		return "", f.findErr
	}
	return f.linkedInURL, nil
}

type fakeProfileAPI struct {
	profile *proxycurl.LinkedInProfile
	err     error
	calls   int
}

func (f *fakeProfileAPI) Profile(context.Context, string) (*proxycurl.LinkedInProfile, error) {
	f.calls++
	return f.profile, f.err
}

func engineerProfile() *proxycurl.LinkedInProfile {
	companyURL := "https://www.linkedin.com/company/acme"
	return &proxycurl.LinkedInProfile{
		Experiences: []proxycurl.LinkedInExperience{{
			Company:                   "Acme",
			CompanyLinkedInProfileURL: &companyURL,
			StartsAt:                  &proxycurl.LinkedInDate{Day: 1, Month: 2, Year: 2021},
			Title:                     "Engineer",
		}},
	}
}

func TestGetLinkedInProfile_CachedProfileSkipsFetch(t *testing.T) {
	memberID := uuid.New()
	store := newFakeStore()
	api := &fakeProfileAPI{}

	b, _ := json.Marshal(engineerProfile())
	store.values[profileCacheKey(memberID)] = b

	uc := NewProfileUsecase(store, fakeMemberRepo{linkedInURL: "https://www.linkedin.com/in/someone"}, api, nil)

	profile, err := uc.GetLinkedInProfile(context.Background(), memberID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profile == nil || len(profile.Experiences) != 1 {
		t.Fatalf("expected cached profile, got %+v", profile)
	}
	if api.calls != 0 {
		t.Fatalf("cache hit must not reach the provider, got %d calls", api.calls)
	}
}

func TestGetLinkedInProfile_NoStoredURLSkipsFetch(t *testing.T) {
	api := &fakeProfileAPI{profile: engineerProfile()}
	uc := NewProfileUsecase(newFakeStore(), fakeMemberRepo{linkedInURL: ""}, api, nil)

	profile, err := uc.GetLinkedInProfile(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile for member without a LinkedIn URL")
	}
	if api.calls != 0 {
		t.Fatalf("no stored URL must mean zero provider calls, got %d", api.calls)
	}
}

func TestGetLinkedInProfile_UnknownMemberReturnsNil(t *testing.T) {
	api := &fakeProfileAPI{}
	uc := NewProfileUsecase(newFakeStore(), fakeMemberRepo{findErr: repository.ErrMemberNotFound}, api, nil)

	profile, err := uc.GetLinkedInProfile(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profile != nil || api.calls != 0 {
		t.Fatalf("unknown member must yield nil without a provider call")
	}
}

func TestGetLinkedInProfile_ProviderFailureCachesNothing(t *testing.T) {
	memberID := uuid.New()
	store := newFakeStore()
	// Provider unavailable: the client degrades to (nil, nil).
	api := &fakeProfileAPI{profile: nil}
	uc := NewProfileUsecase(store, fakeMemberRepo{linkedInURL: "https://www.linkedin.com/in/someone"}, api, nil)

	profile, err := uc.GetLinkedInProfile(context.Background(), memberID)
	if err != nil {
		t.Fatalf("provider failure must not be an error, got %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile when provider is down")
	}
	if len(store.values) != 0 {
		t.Fatalf("nothing may be cached on provider failure")
	}
}

func TestGetLinkedInProfile_SchemaMismatchPropagates(t *testing.T) {
	api := &fakeProfileAPI{err: proxycurl.ErrSchemaMismatch}
	uc := NewProfileUsecase(newFakeStore(), fakeMemberRepo{linkedInURL: "https://www.linkedin.com/in/someone"}, api, nil)

	_, err := uc.GetLinkedInProfile(context.Background(), uuid.New())
	if !errors.Is(err, proxycurl.ErrSchemaMismatch) {
		t.Fatalf("expected schema mismatch to surface, got %v", err)
	}
}

func TestGetLinkedInProfile_FetchPopulatesCache(t *testing.T) {
	memberID := uuid.New()
	store := newFakeStore()
	api := &fakeProfileAPI{profile: engineerProfile()}
	uc := NewProfileUsecase(store, fakeMemberRepo{linkedInURL: "https://www.linkedin.com/in/someone"}, api, nil)

	if _, err := uc.GetLinkedInProfile(context.Background(), memberID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := store.values[profileCacheKey(memberID)]; !ok {
		t.Fatalf("successful fetch must be cached")
	}

	// Second call is served from cache.
	if _, err := uc.GetLinkedInProfile(context.Background(), memberID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("expected exactly one provider call, got %d", api.calls)
	}
}
