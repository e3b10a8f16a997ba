package proxycurl

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Field names below are the wire contract with Proxycurl and must not be
// renamed.

type LinkedInDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Time maps a provider date onto a concrete day. The provider frequently
// omits the day, in which case the first of the month is used.
func (d LinkedInDate) Time() time.Time {
	day := d.Day
	if day < 1 {
		day = 1
	}
	month := d.Month
	if month < 1 {
		month = 1
	}
	return time.Date(d.Year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

type LinkedInExperience struct {
	Company                   string        `json:"company" validate:"required"`
	CompanyLinkedInProfileURL *string       `json:"company_linkedin_profile_url" validate:"omitempty,url,startswith=https://www.linkedin.com/company"`
	Description               *string       `json:"description"`
	EndsAt                    *LinkedInDate `json:"ends_at"`
	Location                  *string       `json:"location"`
	StartsAt                  *LinkedInDate `json:"starts_at" validate:"required"`
	Title                     string        `json:"title" validate:"required"`
}

// CompanyNameID extracts the company's universal name id from the
// experience's company profile URL, e.g.
// "https://www.linkedin.com/company/acme/" yields "acme". Empty when the
// experience carries no resolvable company reference.
func (e LinkedInExperience) CompanyNameID() string {
	if e.CompanyLinkedInProfileURL == nil {
		return ""
	}
	u, err := url.Parse(*e.CompanyLinkedInProfileURL)
	if err != nil {
		return ""
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, p := range parts {
		if p == "company" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// IsCurrent reports whether the experience has no end date, which the
// provider uses to mean "current role".
func (e LinkedInExperience) IsCurrent() bool {
	return e.EndsAt == nil
}

type LinkedInProfile struct {
	Experiences []LinkedInExperience `json:"experiences" validate:"dive"`
}

type LinkedInCompany struct {
	CompanySizeOnLinkedIn int     `json:"company_size_on_linkedin"`
	Description           *string `json:"description"`
	LinkedInInternalID    string  `json:"linkedin_internal_id"`
	Name                  string  `json:"name" validate:"required"`
	ProfilePicURL         string  `json:"profile_pic_url" validate:"required,url"`
	UniversalNameID       string  `json:"universal_name_id" validate:"required"`
}

var validate = validator.New()

func ValidateProfile(p *LinkedInProfile) error {
	return validate.Struct(p)
}

func ValidateCompany(c *LinkedInCompany) error {
	return validate.Struct(c)
}
