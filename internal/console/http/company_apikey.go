package http

import (
	"net/http"

	"github.com/tigaron/partner-admin/pkg/httpx"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

// HandleRevealAPIKey handles the API key reveal endpoint
//
//	@Summary		Reveal API key
//	@Description	Fetches the partner's current API key material from the backend. The
//	@Description	response is never cached.
//	@Tags			API Keys
//	@Produce		json
//	@Param			id	path		string			true	"Company ID"
//	@Success		200	{object}	map[string]any	"success, data: key material"
//	@Failure		400	{object}	map[string]any	"Invalid company ID"
//	@Failure		401	{object}	map[string]any	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies/{id}/reveal-api-key [get].
func (h *CompaniesHandler) HandleRevealAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if invalidCompanyID(id) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	token := httpx.TokenFromContext(ctx)

	res, err := h.CompanyService.RevealAPIKey(ctx, token, id)
	if err != nil {
		writeProxyError(w, log, err, "Failed to reveal API key")
		return
	}

	writeResult(w, http.StatusOK, res)
}

// HandleResetAPIKey handles the API key reset endpoint
//
//	@Summary		Reset API key
//	@Description	Rotates the partner's API key. The old key stops working immediately.
//	@Tags			API Keys
//	@Produce		json
//	@Param			id	path		string			true	"Company ID"
//	@Success		200	{object}	map[string]any	"success, message, data: new key material"
//	@Failure		400	{object}	map[string]any	"Invalid company ID"
//	@Failure		401	{object}	map[string]any	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies/{id}/reset-api-key [post].
func (h *CompaniesHandler) HandleResetAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if invalidCompanyID(id) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	token := httpx.TokenFromContext(ctx)

	res, err := h.CompanyService.ResetAPIKey(ctx, token, id)
	if err != nil {
		writeProxyError(w, log, err, "Failed to reset API key")
		return
	}

	writeResult(w, http.StatusOK, res)
}
