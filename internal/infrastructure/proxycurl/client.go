package proxycurl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"member-profile/internal/config"
)

// ErrSchemaMismatch signals that the provider returned a 2xx payload whose
// shape no longer matches the expected contract. Unlike an unavailable
// provider this is never swallowed.
var ErrSchemaMismatch = errors.New("proxycurl response schema mismatch")

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	logger  *log.Logger
}

func NewClient(cfg config.ProxycurlConfig, logger *log.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
		logger:  logger,
	}
}

// Profile fetches a person profile by LinkedIn URL. An unreachable provider
// or a non-2xx status degrades to (nil, nil); only a contract break is an
// error.
func (c *Client) Profile(ctx context.Context, linkedInProfileURL string) (*LinkedInProfile, error) {
	q := url.Values{}
	q.Set("linkedin_profile_url", linkedInProfileURL)

	body, ok, err := c.get(ctx, "/v2/linkedin", q)
	if err != nil || !ok {
		return nil, err
	}

	var profile LinkedInProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if err := ValidateProfile(&profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	return &profile, nil
}

// Company fetches a company record by its universal name id.
func (c *Client) Company(ctx context.Context, nameID string) (*LinkedInCompany, error) {
	q := url.Values{}
	q.Set("url", "https://www.linkedin.com/company/"+nameID)

	body, ok, err := c.get(ctx, "/linkedin/company", q)
	if err != nil || !ok {
		return nil, err
	}

	var company LinkedInCompany
	if err := json.Unmarshal(body, &company); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	if err := ValidateCompany(&company); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	return &company, nil
}

// get performs a rate-limited authorized GET. ok=false means the provider
// was unavailable (transport failure, timeout, or non-2xx status).
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, bool, error) {
	if c == nil || c.client == nil {
		return nil, false, errors.New("nil proxycurl client")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, false, err
	}

	endpoint := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Proxycurl] request failed | path=%s err=%v", path, err)
		}
		return nil, false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if c.logger != nil {
			c.logger.Printf("[Proxycurl] non-success status | path=%s status=%d body=%q", path, resp.StatusCode, strings.TrimSpace(string(rb)))
		}
		return nil, false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[Proxycurl] read body failed | path=%s err=%v", path, err)
		}
		return nil, false, nil
	}

	return body, true, nil
}
