package config

import (
	"strings"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "member-profile")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("PROXYCURL_API_KEY", "test-key")
}

func TestLoad_Success(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Proxycurl.APIKey != "test-key" {
		t.Fatalf("unexpected api key: %q", cfg.Proxycurl.APIKey)
	}
	if cfg.Proxycurl.BaseURL != defaultProxycurlBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.Proxycurl.BaseURL)
	}
	if cfg.Redis.JobStream != defaultJobStream {
		t.Fatalf("expected default job stream, got %q", cfg.Redis.JobStream)
	}
}

func TestLoad_MissingProxycurlKeyFailsFast(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PROXYCURL_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected error for missing PROXYCURL_API_KEY")
	}
	if !strings.Contains(err.Error(), "PROXYCURL_API_KEY") {
		t.Fatalf("error should name the missing variable, got %v", err)
	}
}

func TestLoad_OptionalOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PROXYCURL_REQUEST_TIMEOUT", "3")
	t.Setenv("PROXYCURL_REQUESTS_PER_MINUTE", "10")
	t.Setenv("REDIS_JOB_STREAM", "jobs:custom")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got := cfg.Proxycurl.RequestTimeout.Seconds(); got != 3 {
		t.Fatalf("expected 3s timeout, got %v", cfg.Proxycurl.RequestTimeout)
	}
	if cfg.Proxycurl.RequestsPerMinute != 10 {
		t.Fatalf("expected 10 rpm, got %d", cfg.Proxycurl.RequestsPerMinute)
	}
	if cfg.Redis.JobStream != "jobs:custom" {
		t.Fatalf("unexpected job stream: %q", cfg.Redis.JobStream)
	}
}
