package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/tigaron/partner-admin/internal/console/codegen"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

// Suggestion is a proposed company code and PKS number for a new company.
type Suggestion struct {
	CompanyCode string `json:"company_code"`
	PKSNumber   string `json:"pks_number"`
	// Source is "backend" when the code was checked against existing
	// partners, "local" when generated without backend help.
	Source string `json:"source"`
}

// SuggestService proposes company codes. It consults the backend to avoid
// suggesting a code already in use, but never blocks on it: the lookup runs
// under a short deadline and a locally generated code is always in hand as
// the fallback. Cancelling the request context abandons the lookup.
type SuggestService struct {
	Gateway  *gatewaysdk.Client
	Sessions *SessionService

	// Timeout bounds the backend lookup. Zero means 2 seconds.
	Timeout time.Duration
}

// Suggest generates a company code and PKS number for the given name.
func (s *SuggestService) Suggest(ctx context.Context, token, name string) Suggestion {
	l := slogx.FromContext(ctx)

	suggestion := Suggestion{
		CompanyCode: codegen.CompanyCode(name),
		PKSNumber:   codegen.PKSNumber(),
		Source:      "local",
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	taken, err := s.existingCodes(ctx, token)
	if err != nil {
		if gatewaysdk.IsUnauthorized(err) && s.Sessions != nil {
			s.Sessions.ClearByToken(ctx, token)
		}
		l.Debug("code lookup failed, using local suggestion", "error", err)
		return suggestion
	}

	// Regenerate while the code collides with an existing partner. The
	// sequence part is clock-derived, so nudge the clock forward each try.
	now := time.Now()
	for i := 0; i < 1000 && taken[suggestion.CompanyCode]; i++ {
		now = now.Add(time.Millisecond)
		suggestion.CompanyCode = codegen.CompanyCodeAt(name, now)
	}

	suggestion.Source = "backend"
	return suggestion
}

// existingCodes fetches the set of company codes already assigned.
func (s *SuggestService) existingCodes(ctx context.Context, token string) (map[string]bool, error) {
	res, err := s.Gateway.ListPartners(ctx, token)
	if err != nil {
		return nil, err
	}

	var partners []struct {
		CompanyID string `json:"company_id"`
	}
	if err := json.Unmarshal(res.Data, &partners); err != nil {
		// Not a list shape; nothing to check against
		return map[string]bool{}, nil
	}

	taken := make(map[string]bool, len(partners))
	for _, p := range partners {
		if p.CompanyID != "" {
			taken[p.CompanyID] = true
		}
	}
	return taken, nil
}
