package http

import (
	"encoding/json"
	"net/http"

	"github.com/tigaron/partner-admin/internal/console/scopes"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
	"github.com/tigaron/partner-admin/pkg/httpx"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

// HandleGetScopes handles the scope list endpoint
//
//	@Summary		Get company scopes
//	@Description	Fetches the partner's data-access scopes from the backend. With
//	@Description	?view=console the backend list is translated to the console's flat
//	@Description	key-to-boolean map.
//	@Tags			Scopes
//	@Produce		json
//	@Param			id		path		string			true	"Company ID"
//	@Param			view	query		string			false	"Set to console for the flat scope map"
//	@Success		200		{object}	map[string]any	"success, data: scope items or console map"
//	@Failure		400		{object}	map[string]any	"Invalid company ID"
//	@Failure		401		{object}	map[string]any	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies/{id}/scopes [get].
func (h *CompaniesHandler) HandleGetScopes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if invalidCompanyID(id) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	token := httpx.TokenFromContext(ctx)

	res, err := h.CompanyService.GetScopes(ctx, token, id)
	if err != nil {
		writeProxyError(w, log, err, "Failed to fetch scopes")
		return
	}

	if r.URL.Query().Get("view") == "console" {
		var items []gatewaysdk.ScopeItem
		if err := json.Unmarshal(res.Data, &items); err != nil {
			log.Error("backend scope list has unexpected shape", "error", err)
			httpx.WriteError(w, http.StatusBadGateway, "Invalid response from backend")
			return
		}
		httpx.WriteData(w, http.StatusOK, scopes.FromBackend(items))
		return
	}

	writeResult(w, http.StatusOK, res)
}

// HandleUpdateScopes handles the scope replacement endpoint
//
//	@Summary		Update company scopes
//	@Description	Replaces the partner's scope set. The body's scopes field is either a
//	@Description	list of {scope_name, enabled} items or the console's flat key-to-boolean
//	@Description	map, which is translated to the full-state backend shape.
//	@Tags			Scopes
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Company ID"
//	@Param			request	body		map[string]any	true	"Scopes payload"
//	@Success		200		{object}	map[string]any	"success, data: updated scopes"
//	@Failure		400		{object}	map[string]any	"Invalid company ID or scopes payload missing"
//	@Failure		401		{object}	map[string]any	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies/{id}/scopes [put].
func (h *CompaniesHandler) HandleUpdateScopes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if invalidCompanyID(id) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	token := httpx.TokenFromContext(ctx)

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	raw, ok := body["scopes"]
	if !ok {
		httpx.WriteError(w, http.StatusBadRequest, "Scopes payload is missing or invalid")
		return
	}

	var (
		res *gatewaysdk.Result
		err error
	)

	var items []gatewaysdk.ScopeItem
	if jsonErr := json.Unmarshal(raw, &items); jsonErr == nil && items != nil {
		res, err = h.CompanyService.UpdateScopes(ctx, token, id, items)
	} else {
		var consoleMap map[string]bool
		if jsonErr := json.Unmarshal(raw, &consoleMap); jsonErr != nil || consoleMap == nil {
			httpx.WriteError(w, http.StatusBadRequest, "Scopes payload is missing or invalid")
			return
		}
		res, err = h.CompanyService.UpdateConsoleScopes(ctx, token, id, consoleMap)
	}

	if err != nil {
		writeProxyError(w, log, err, "Failed to update scopes")
		return
	}

	writeResult(w, http.StatusOK, res)
}

type scopeOptionsData struct {
	Keys     []string        `json:"keys"`
	Defaults map[string]bool `json:"defaults"`
}

// HandleScopeOptions handles the scope vocabulary endpoint
//
//	@Summary		Scope options
//	@Description	Returns the console's scope keys in canonical order and the set
//	@Description	preselected for new companies. Static data, no backend call.
//	@Tags			Scopes
//	@Produce		json
//	@Success		200	{object}	map[string]any	"success, data with keys / defaults"
//	@Security		BearerAuth
//	@Router			/api/companies/scope-options [get].
func (h *CompaniesHandler) HandleScopeOptions(w http.ResponseWriter, r *http.Request) {
	httpx.WriteData(w, http.StatusOK, scopeOptionsData{
		Keys:     scopes.Keys(),
		Defaults: scopes.Defaults(),
	})
}
