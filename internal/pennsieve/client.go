// Package pennsieve is a minimal client for the two organization-membership
// endpoints the scripts use. No retries, no pagination; a non-2xx response
// aborts the run.
package pennsieve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Penn-I3H/pennsieve-invite-sync/internal/apperrors"
)

const requestTimeout = 30 * time.Second

type Client struct {
	host   string
	orgID  string
	apiKey string
	http   *http.Client
}

func NewClient(host, orgID, apiKey string) *Client {
	return &Client{
		host:   host,
		orgID:  orgID,
		apiKey: apiKey,
		http:   &http.Client{Timeout: requestTimeout},
	}
}

// MembersURL is the endpoint both operations target.
func (c *Client) MembersURL() string {
	return fmt.Sprintf("%s/organizations/%s/members", c.host, c.orgID)
}

// GetMembers fetches the current organization member list.
func (c *Client) GetMembers(ctx context.Context) ([]Member, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.MembersURL(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var members []Member
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, fmt.Errorf("decoding members response: %w", err)
	}
	return members, nil
}

// SendInvites POSTs a batch invite payload and returns the decoded response
// object. The response shape is not interpreted, only echoed to the operator.
func (c *Client) SendInvites(ctx context.Context, payload any) (map[string]any, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.MembersURL(), bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding invite response: %w", err)
	}
	return result, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.Transport(err, 0, "")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Transport(err, resp.StatusCode, "")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.Transport(nil, resp.StatusCode, string(body))
	}
	return body, nil
}
