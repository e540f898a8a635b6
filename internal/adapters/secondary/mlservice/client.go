package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"ml-classroom-service/internal/config"
	"ml-classroom-service/internal/core/domain"
	"ml-classroom-service/internal/core/ports/output"
	"ml-classroom-service/internal/pkg/urlchecker"
)

type client struct {
	httpClient *http.Client
	enabled    bool
}

// NewClient creates the ML service adapter. Probing always works; classify
// calls are reported unavailable unless the integration is enabled.
func NewClient(cfg *config.MLServiceConfig) ports.MLServiceClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &client{
		httpClient: &http.Client{Timeout: timeout},
		enabled:    cfg.Enabled,
	}
}

func (c *client) IsAvailable() bool {
	return c.enabled
}

func (c *client) newRequest(ctx context.Context, method string, creds *domain.Credentials, path string, body io.Reader) (*http.Request, error) {
	base, err := urlchecker.Check(creds.URL)
	if err != nil {
		return nil, err
	}

	target := strings.TrimRight(base, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("create ml service request: %w", err)
	}
	req.SetBasicAuth(creds.Username, creds.Password)
	req.Header.Set("Accept", "application/json")

	log.WithFields(log.Fields{
		"method":         method,
		"url":            target,
		"credentials_id": creds.ID,
	}).Debug("calling ml service")

	return req, nil
}

func (c *client) Probe(ctx context.Context, creds *domain.Credentials) (*ports.ProbeResult, error) {
	req, err := c.newRequest(ctx, http.MethodGet, creds, "", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", domain.ErrCredentialsRejected, resp.StatusCode)
	}
	return &ports.ProbeResult{StatusCode: resp.StatusCode}, nil
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Classes []struct {
		ClassName  string  `json:"class_name"`
		Confidence float64 `json:"confidence"`
	} `json:"classes"`
}

func (c *client) Classify(ctx context.Context, creds *domain.Credentials, classifierID, data string) ([]domain.Classification, error) {
	if !c.enabled {
		return nil, domain.ErrClassifierUnavailable
	}

	body, err := json.Marshal(classifyRequest{Text: data})
	if err != nil {
		return nil, fmt.Errorf("marshal classify request: %w", err)
	}

	path := "/v1/classifiers/" + url.PathEscape(classifierID) + "/classify"
	req, err := c.newRequest(ctx, http.MethodPost, creds, path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrServiceUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", domain.ErrCredentialsRejected, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: classifier %s not found", domain.ErrClassifierUnavailable, classifierID)
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("%w: status %d", domain.ErrServiceUnreachable, resp.StatusCode)
	}

	var decoded classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode classify response: %w", err)
	}

	results := make([]domain.Classification, 0, len(decoded.Classes))
	for _, cls := range decoded.Classes {
		results = append(results, domain.Classification{
			ClassName:  cls.ClassName,
			Confidence: int(cls.Confidence*100 + 0.5),
		})
	}
	return results, nil
}
