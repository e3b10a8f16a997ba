package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrProfileNotAvailable means the member has no LinkedIn profile to
	// import from: no stored URL, or the provider is unavailable.
	ErrProfileNotAvailable = errors.New("linkedin profile not available")

	// ErrExperienceIndexOutOfRange means the caller selected an experience
	// position that does not exist in the fetched profile, usually because
	// the profile changed between listing and importing.
	ErrExperienceIndexOutOfRange = errors.New("experience index out of range")

	// ErrCompanyNotResolvable means an experience references a company the
	// provider could not return, so the import cannot proceed with a
	// dangling reference.
	ErrCompanyNotResolvable = errors.New("company not resolvable")
)

var employmentTypes = map[string]struct{}{
	"apprenticeship": {},
	"contract":       {},
	"freelance":      {},
	"full_time":      {},
	"internship":     {},
	"part_time":      {},
}

var locationTypes = map[string]struct{}{
	"hybrid":    {},
	"in_person": {},
	"remote":    {},
}

func isValidEmploymentType(v string) bool {
	_, ok := employmentTypes[v]
	return ok
}

func isValidLocationType(v string) bool {
	_, ok := locationTypes[v]
	return ok
}
