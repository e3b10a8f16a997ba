package proxycurl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"member-profile/internal/config"
)

func testClient(baseURL string) *Client {
	return NewClient(config.ProxycurlConfig{
		APIKey:            "test-key",
		BaseURL:           baseURL,
		RequestTimeout:    2 * time.Second,
		RequestsPerMinute: 600,
	}, nil)
}

func TestClient_Profile_Success(t *testing.T) {
	var gotAuth, gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotURL = r.URL.Query().Get("linkedin_profile_url")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"experiences": [{
				"company": "Acme",
				"company_linkedin_profile_url": "https://www.linkedin.com/company/acme",
				"description": null,
				"ends_at": null,
				"location": "Remote",
				"starts_at": {"day": 0, "month": 2, "year": 2021},
				"title": "Engineer"
			}]
		}`))
	}))
	defer srv.Close()

	profile, err := testClient(srv.URL).Profile(context.Background(), "https://www.linkedin.com/in/someone")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if profile == nil {
		t.Fatalf("expected a profile")
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotURL != "https://www.linkedin.com/in/someone" {
		t.Fatalf("unexpected linkedin_profile_url param: %q", gotURL)
	}
	if len(profile.Experiences) != 1 {
		t.Fatalf("expected 1 experience, got %d", len(profile.Experiences))
	}

	exp := profile.Experiences[0]
	if exp.Title != "Engineer" || exp.Company != "Acme" {
		t.Fatalf("unexpected experience: %+v", exp)
	}
	if !exp.IsCurrent() {
		t.Fatalf("nil ends_at must mean current role")
	}
	if got := exp.CompanyNameID(); got != "acme" {
		t.Fatalf("unexpected company name id: %q", got)
	}
	if got := exp.StartsAt.Time(); got.Day() != 1 {
		t.Fatalf("absent day should default to the 1st, got %v", got)
	}
}

func TestClient_Profile_ServerErrorDegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	profile, err := testClient(srv.URL).Profile(context.Background(), "https://www.linkedin.com/in/someone")
	if err != nil {
		t.Fatalf("a 500 must not surface as an error, got %v", err)
	}
	if profile != nil {
		t.Fatalf("expected nil profile on 500")
	}
}

func TestClient_Profile_MissingTitleIsSchemaMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"experiences": [{
				"company": "Acme",
				"company_linkedin_profile_url": null,
				"description": null,
				"ends_at": null,
				"location": null,
				"starts_at": {"day": 1, "month": 2, "year": 2021}
			}]
		}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Profile(context.Background(), "https://www.linkedin.com/in/someone")
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestClient_Profile_MalformedBodyIsSchemaMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>nope</html>`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Profile(context.Background(), "https://www.linkedin.com/in/someone")
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch for unparseable body, got %v", err)
	}
}

func TestClient_Company_Success(t *testing.T) {
	var gotURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"company_size_on_linkedin": 250,
			"description": "Makers of everything",
			"linkedin_internal_id": "12345",
			"name": "Acme",
			"profile_pic_url": "https://media.example.com/acme.png",
			"universal_name_id": "acme"
		}`))
	}))
	defer srv.Close()

	company, err := testClient(srv.URL).Company(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if company == nil || company.Name != "Acme" || company.UniversalNameID != "acme" {
		t.Fatalf("unexpected company: %+v", company)
	}
	if gotURL != "https://www.linkedin.com/company/acme" {
		t.Fatalf("unexpected url param: %q", gotURL)
	}
}

func TestClient_Company_MissingNameIsSchemaMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"company_size_on_linkedin": 250,
			"linkedin_internal_id": "12345",
			"profile_pic_url": "https://media.example.com/acme.png",
			"universal_name_id": "acme"
		}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Company(context.Background(), "acme")
	if !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestClient_Company_NotFoundDegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	company, err := testClient(srv.URL).Company(context.Background(), "no-such-company")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if company != nil {
		t.Fatalf("expected nil company on 404")
	}
}

func TestLinkedInExperience_CompanyNameID(t *testing.T) {
	withURL := func(u string) LinkedInExperience {
		return LinkedInExperience{CompanyLinkedInProfileURL: &u}
	}

	if got := withURL("https://www.linkedin.com/company/acme/").CompanyNameID(); got != "acme" {
		t.Fatalf("expected acme, got %q", got)
	}
	if got := withURL("https://www.linkedin.com/company/acme/about/").CompanyNameID(); got != "acme" {
		t.Fatalf("expected acme with trailing segments, got %q", got)
	}
	if got := (LinkedInExperience{}).CompanyNameID(); got != "" {
		t.Fatalf("expected empty id without a URL, got %q", got)
	}
	if got := withURL("https://www.linkedin.com/company/").CompanyNameID(); got != "" {
		t.Fatalf("expected empty id for bare company path, got %q", got)
	}
}
