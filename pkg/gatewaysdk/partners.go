package gatewaysdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	loginPath    = "/api/v1/auth/admin/login"
	partnersPath = "/admin/partners"
)

// Login authenticates an admin and returns the issued token and profile
// alongside the normalized result.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginData, *Result, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, loginPath, "", bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}

	res, err := normalize(resp)
	if err != nil {
		return nil, nil, err
	}

	var data LoginData
	if err := json.Unmarshal(res.Data, &data); err != nil {
		return nil, nil, &DecodeError{StatusCode: res.StatusCode}
	}

	return &data, res, nil
}

// ListPartners returns the partner collection as the backend serves it.
func (c *Client) ListPartners(ctx context.Context, token string) (*Result, error) {
	resp, err := c.do(ctx, http.MethodGet, partnersPath, token, nil)
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// CreatePartner creates a partner. The payload is pre-shaped by the caller;
// the backend responds 201 with the created record.
func (c *Client) CreatePartner(ctx context.Context, token string, payload map[string]any) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, partnersPath, token, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// GetPartner fetches a single partner by its opaque record ID.
func (c *Client) GetPartner(ctx context.Context, token, id string) (*Result, error) {
	resp, err := c.do(ctx, http.MethodGet, partnersPath+"/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// UpdatePartner applies a partial update. Only the keys present in payload
// are touched on the backend.
func (c *Client) UpdatePartner(ctx context.Context, token, id string, payload map[string]any) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, partnersPath+"/"+id, token, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// DeletePartner removes a partner record.
func (c *Client) DeletePartner(ctx context.Context, token, id string) (*Result, error) {
	resp, err := c.do(ctx, http.MethodDelete, partnersPath+"/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// GetPartnerScopes returns a partner's data-access scope list.
func (c *Client) GetPartnerScopes(ctx context.Context, token, id string) (*Result, error) {
	resp, err := c.do(ctx, http.MethodGet, partnersPath+"/"+id+"/scopes", token, nil)
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// UpdatePartnerScopes replaces a partner's scope set.
func (c *Client) UpdatePartnerScopes(ctx context.Context, token, id string, scopes []ScopeItem) (*Result, error) {
	body, err := json.Marshal(scopesUpdateRequest{Scopes: scopes})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPut, partnersPath+"/"+id+"/scopes", token, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// RevealAPIKey fetches the partner's current API key material.
func (c *Client) RevealAPIKey(ctx context.Context, token, id string) (*Result, error) {
	resp, err := c.do(ctx, http.MethodGet, partnersPath+"/"+id+"/reveal-api-key", token, nil)
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}

// ResetAPIKey rotates the partner's API key. The old key is invalid once
// this returns successfully.
func (c *Client) ResetAPIKey(ctx context.Context, token, id string) (*Result, error) {
	resp, err := c.do(ctx, http.MethodPost, partnersPath+"/"+id+"/reset-api-key", token, nil)
	if err != nil {
		return nil, err
	}
	return normalize(resp)
}
