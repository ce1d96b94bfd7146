package http

import (
	"net/http"
	"strings"

	"github.com/tigaron/partner-admin/internal/console/service"
	"github.com/tigaron/partner-admin/pkg/httpx"
)

type SuggestHandler struct {
	SuggestService *service.SuggestService
}

// ServeHTTP handles the code suggestion endpoint
//
//	@Summary		Suggest company code
//	@Description	Generates a company code and PKS number from the company name. Existing
//	@Description	backend codes are avoided when the backend answers in time; otherwise the
//	@Description	locally generated code is returned as-is.
//	@Tags			Companies
//	@Produce		json
//	@Param			name	query		string			true	"Company name"
//	@Success		200		{object}	map[string]any	"success, data with company_code / pks_number / source"
//	@Failure		400		{object}	map[string]any	"Missing company name"
//	@Failure		401		{object}	map[string]any	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies/suggest-code [get].
func (h *SuggestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Company name is required")
		return
	}

	token := httpx.TokenFromContext(ctx)

	suggestion := h.SuggestService.Suggest(ctx, token, name)
	httpx.WriteData(w, http.StatusOK, suggestion)
}
