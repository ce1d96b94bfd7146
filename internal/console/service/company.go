package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/tigaron/partner-admin/internal/console/domain"
	"github.com/tigaron/partner-admin/internal/console/scopes"
	"github.com/tigaron/partner-admin/internal/console/validate"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

// ValidationError is a locally detected bad request. The message surfaces
// verbatim as the HTTP response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CompanyService forwards company operations to the backend, shaping
// payloads on the way out and clearing dead sessions when the backend
// rejects the token.
type CompanyService struct {
	Gateway  *gatewaysdk.Client
	Sessions *SessionService
}

// List fetches the partner collection.
func (s *CompanyService) List(ctx context.Context, token string) (*gatewaysdk.Result, error) {
	res, err := s.Gateway.ListPartners(ctx, token)
	return res, s.intercept(ctx, token, err)
}

// Create validates required fields, shapes the payload and forwards it.
func (s *CompanyService) Create(ctx context.Context, token string, form domain.CreateCompanyForm) (*gatewaysdk.Result, error) {
	// Some clients send the company name under "name".
	if strings.TrimSpace(form.CompanyName) == "" {
		form.CompanyName = form.Name
	}
	if msg := validate.MissingRequired(form); msg != "" {
		return nil, &ValidationError{Message: msg}
	}

	res, err := s.Gateway.CreatePartner(ctx, token, BuildCreatePayload(form))
	return res, s.intercept(ctx, token, err)
}

// Get fetches a single partner.
func (s *CompanyService) Get(ctx context.Context, token, id string) (*gatewaysdk.Result, error) {
	res, err := s.Gateway.GetPartner(ctx, token, id)
	return res, s.intercept(ctx, token, err)
}

// Update shapes a partial update from the raw request body and forwards it.
// An update that touches no known field is rejected locally.
func (s *CompanyService) Update(ctx context.Context, token, id string, body map[string]json.RawMessage) (*gatewaysdk.Result, error) {
	payload := BuildUpdatePayload(body)
	if len(payload) == 0 {
		return nil, &ValidationError{Message: "No fields to update"}
	}

	res, err := s.Gateway.UpdatePartner(ctx, token, id, payload)
	return res, s.intercept(ctx, token, err)
}

// Delete removes a partner.
func (s *CompanyService) Delete(ctx context.Context, token, id string) (*gatewaysdk.Result, error) {
	res, err := s.Gateway.DeletePartner(ctx, token, id)
	return res, s.intercept(ctx, token, err)
}

// GetScopes fetches a partner's scope list.
func (s *CompanyService) GetScopes(ctx context.Context, token, id string) (*gatewaysdk.Result, error) {
	res, err := s.Gateway.GetPartnerScopes(ctx, token, id)
	return res, s.intercept(ctx, token, err)
}

// UpdateScopes replaces a partner's scope set.
func (s *CompanyService) UpdateScopes(ctx context.Context, token, id string, items []gatewaysdk.ScopeItem) (*gatewaysdk.Result, error) {
	res, err := s.Gateway.UpdatePartnerScopes(ctx, token, id, items)
	return res, s.intercept(ctx, token, err)
}

// UpdateConsoleScopes replaces a partner's scope set from a console scope
// map, translating it to the backend shape first.
func (s *CompanyService) UpdateConsoleScopes(ctx context.Context, token, id string, console map[string]bool) (*gatewaysdk.Result, error) {
	return s.UpdateScopes(ctx, token, id, scopes.ToUpdatePayload(console))
}

// RevealAPIKey fetches the partner's current API key material.
func (s *CompanyService) RevealAPIKey(ctx context.Context, token, id string) (*gatewaysdk.Result, error) {
	res, err := s.Gateway.RevealAPIKey(ctx, token, id)
	return res, s.intercept(ctx, token, err)
}

// ResetAPIKey rotates the partner's API key.
func (s *CompanyService) ResetAPIKey(ctx context.Context, token, id string) (*gatewaysdk.Result, error) {
	res, err := s.Gateway.ResetAPIKey(ctx, token, id)
	return res, s.intercept(ctx, token, err)
}

// intercept watches for backend 401s and clears the matching session before
// handing the error back.
func (s *CompanyService) intercept(ctx context.Context, token string, err error) error {
	if err == nil {
		return nil
	}
	if gatewaysdk.IsUnauthorized(err) && s.Sessions != nil {
		s.Sessions.ClearByToken(ctx, token)
	}
	return err
}

// BuildCreatePayload shapes a create form into the backend payload.
// The always-present fields default to "" (or [] for scopes); company_id
// and the contract dates are included only when non-empty after trimming.
func BuildCreatePayload(form domain.CreateCompanyForm) map[string]any {
	payload := map[string]any{
		"company_name": strings.TrimSpace(form.CompanyName),
		"pic_name":     strings.TrimSpace(form.PICName),
		"pic_email":    strings.TrimSpace(form.PICEmail),
		"pic_phone":    strings.TrimSpace(form.PICPhone),
		"notes":        strings.TrimSpace(form.Notes),
		"scopes":       scopes.ToBackend(form.Scopes),
	}

	if v := strings.TrimSpace(form.CompanyID); v != "" {
		payload["company_id"] = v
	}
	if v := strings.TrimSpace(form.ContractStart); v != "" {
		payload["contract_start"] = v
	}
	if v := strings.TrimSpace(form.ContractEnd); v != "" {
		payload["contract_end"] = v
	}

	return payload
}

// BuildUpdatePayload shapes a partial update from the raw body. Field rules:
//   - company_name, pic_name, pic_email: included when non-empty strings
//   - company_id: included only when non-empty after trimming
//   - pic_phone: included whenever the value is a string, even ""
//   - status, contract_start, contract_end: included when non-empty
//   - notes: included whenever the key is present, even ""
//
// Keys the backend doesn't know are never forwarded.
func BuildUpdatePayload(body map[string]json.RawMessage) map[string]any {
	payload := map[string]any{}

	if v, ok := asString(body["company_name"]); ok && strings.TrimSpace(v) != "" {
		payload["company_name"] = strings.TrimSpace(v)
	}
	if v, ok := asString(body["company_id"]); ok && strings.TrimSpace(v) != "" {
		payload["company_id"] = strings.TrimSpace(v)
	}
	if v, ok := asString(body["pic_name"]); ok && strings.TrimSpace(v) != "" {
		payload["pic_name"] = strings.TrimSpace(v)
	}
	if v, ok := asString(body["pic_email"]); ok && strings.TrimSpace(v) != "" {
		payload["pic_email"] = strings.TrimSpace(v)
	}
	if v, ok := asString(body["pic_phone"]); ok {
		payload["pic_phone"] = strings.TrimSpace(v)
	}
	if v, ok := asString(body["status"]); ok && v != "" {
		// The console surface speaks "active"/"inactive"; the backend
		// stores "Y"/"N". Backend codes pass through untouched.
		if v == domain.StatusDisplayActive || v == domain.StatusDisplayInactive {
			v = domain.StatusToBackend(v)
		}
		payload["status"] = v
	}
	if v, ok := asString(body["contract_start"]); ok && v != "" {
		payload["contract_start"] = v
	}
	if v, ok := asString(body["contract_end"]); ok && v != "" {
		payload["contract_end"] = v
	}
	if raw, ok := body["notes"]; ok {
		if v, isStr := asString(raw); isStr {
			payload["notes"] = v
		} else {
			payload["notes"] = ""
		}
	}

	return payload
}

// asString decodes a raw JSON value as a string. Returns false when the key
// was absent or the value is not a JSON string.
func asString(raw json.RawMessage) (string, bool) {
	if raw == nil {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
