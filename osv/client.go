// Package osv implements the client for the Open Source Vulnerabilities
// query API and the fixed-version extraction over its response.
package osv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/osv-scanner/pkg/models"
	"github.com/hadeel-ghalieah/vulnerabilities/metrics"
	"github.com/hadeel-ghalieah/vulnerabilities/model"
	"github.com/hadeel-ghalieah/vulnerabilities/util"
)

var logger = util.InitLogger()

// DefaultAPIURL is the production OSV query endpoint
const DefaultAPIURL = "https://api.osv.dev/v1/query"

// queryResponse is the subset of the OSV API response the service reads.
// The next_page_token field the API may return is deliberately ignored.
type queryResponse struct {
	Vulns []models.Vulnerability `json:"vulns"`
}

// Client is the long-lived OSV API client. It is safe for use by
// concurrent sub-queries and is shared across requests so connection setup
// is paid once per host.
type Client struct {
	APIURL     string
	HTTPClient *http.Client
}

// NewClient builds the shared OSV client with a tuned transport
func NewClient(apiURL string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   30 * time.Second,
					KeepAlive: 90 * time.Second,
				}).DialContext,
				MaxIdleConns:          100,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
}

// QueryPackage posts one OSV query for a package scoped to a single
// ecosystem and returns every fixed version found in the response.
// Transport errors and non-2xx statuses propagate to the caller; there is
// no retry.
func (c *Client) QueryPackage(ctx context.Context, name, ecosystem string) ([]string, error) {
	payload, err := json.Marshal(model.NewQuery(name, ecosystem))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OSV query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.APIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build OSV request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		metrics.Get().QueriesTotal.WithLabelValues(ecosystem, "error").Inc()
		return nil, fmt.Errorf("OSV API request failed for ecosystem %s: %w", ecosystem, err)
	}
	defer resp.Body.Close()
	metrics.Get().QueryDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		metrics.Get().QueriesTotal.WithLabelValues(ecosystem, "error").Inc()
		return nil, fmt.Errorf("OSV API returned status %s for ecosystem %s", resp.Status, ecosystem)
	}

	var result queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		metrics.Get().QueriesTotal.WithLabelValues(ecosystem, "error").Inc()
		return nil, fmt.Errorf("failed to decode OSV response: %w", err)
	}

	metrics.Get().QueriesTotal.WithLabelValues(ecosystem, "ok").Inc()
	logger.Sugar().Debugf("OSV query for %s (%s) returned %d vulns", name, ecosystem, len(result.Vulns))

	return ExtractFixedVersions(result.Vulns), nil
}

// ExtractFixedVersions walks vulnerability -> affected -> range -> event
// and collects every non-empty fixed version. An event without a fixed
// version contributes nothing. Duplicates are kept at this stage; merging
// is the aggregator's job.
func ExtractFixedVersions(vulns []models.Vulnerability) []string {
	var fixed []string
	for _, vuln := range vulns {
		for _, affected := range vuln.Affected {
			for _, vrange := range affected.Ranges {
				for _, event := range vrange.Events {
					if event.Fixed != "" {
						fixed = append(fixed, event.Fixed)
					}
				}
			}
		}
	}
	return fixed
}
