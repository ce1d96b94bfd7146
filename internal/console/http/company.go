package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/tigaron/partner-admin/internal/console/domain"
	"github.com/tigaron/partner-admin/pkg/httpx"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

// maxUpdateBodySize caps update request bodies at 1 MiB.
const maxUpdateBodySize = 1 << 20

// HandleGet handles the single company endpoint
//
//	@Summary		Get company
//	@Description	Fetches one partner record by ID. With ?view=console the backend
//	@Description	status code is translated to its display form (Y -> active).
//	@Tags			Companies
//	@Produce		json
//	@Param			id		path		string	true	"Company ID"
//	@Param			view	query		string	false	"Set to console for display status"
//	@Success		200	{object}	map[string]any	"success, data: company"
//	@Failure		400	{object}	map[string]any	"Invalid company ID"
//	@Failure		401	{object}	map[string]any	"Unauthorized"
//	@Failure		404	{object}	map[string]any	"Company not found"
//	@Security		BearerAuth
//	@Router			/api/companies/{id} [get].
func (h *CompaniesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if invalidCompanyID(id) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	token := httpx.TokenFromContext(ctx)

	res, err := h.CompanyService.Get(ctx, token, id)
	if err != nil {
		writeProxyError(w, log, err, "Failed to fetch company")
		return
	}

	if r.URL.Query().Get("view") == "console" {
		httpx.WriteData(w, http.StatusOK, withDisplayStatus(res.Data))
		return
	}

	writeResult(w, http.StatusOK, res)
}

// withDisplayStatus rewrites a backend status code inside a company object
// to its display form. Non-object payloads and non-string statuses are
// returned untouched.
func withDisplayStatus(data []byte) json.RawMessage {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return json.RawMessage(data)
	}

	var status string
	if err := json.Unmarshal(obj["status"], &status); err != nil {
		return json.RawMessage(data)
	}

	display, err := json.Marshal(domain.StatusToDisplay(status))
	if err != nil {
		return json.RawMessage(data)
	}
	obj["status"] = display

	out, err := json.Marshal(obj)
	if err != nil {
		return json.RawMessage(data)
	}
	return out
}

// HandleUpdate handles the company update endpoint
//
//	@Summary		Update company
//	@Description	Applies a partial update. Only known fields are forwarded; an update that
//	@Description	touches no known field is rejected. An empty body is treated as an empty
//	@Description	object.
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Company ID"
//	@Param			request	body		map[string]any	true	"Fields to change"
//	@Success		200		{object}	map[string]any	"success, data: updated company"
//	@Failure		400		{object}	map[string]any	"Invalid company ID, invalid JSON, or no fields to update"
//	@Failure		401		{object}	map[string]any	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies/{id} [put].
func (h *CompaniesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if invalidCompanyID(id) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	token := httpx.TokenFromContext(ctx)

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxUpdateBodySize))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	body := map[string]json.RawMessage{}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 {
		if err := json.Unmarshal(trimmed, &body); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
			return
		}
	}

	res, err := h.CompanyService.Update(ctx, token, id, body)
	if err != nil {
		writeProxyError(w, log, err, "Failed to update company")
		return
	}

	writeResult(w, http.StatusOK, res)
}

// HandleDelete handles the company delete endpoint
//
//	@Summary		Delete company
//	@Description	Removes a partner record.
//	@Tags			Companies
//	@Produce		json
//	@Param			id	path		string			true	"Company ID"
//	@Success		200	{object}	map[string]any	"success, message"
//	@Failure		400	{object}	map[string]any	"Invalid company ID"
//	@Failure		401	{object}	map[string]any	"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies/{id} [delete].
func (h *CompaniesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if invalidCompanyID(id) {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid company ID")
		return
	}

	token := httpx.TokenFromContext(ctx)

	res, err := h.CompanyService.Delete(ctx, token, id)
	if err != nil {
		writeProxyError(w, log, err, "Failed to delete company")
		return
	}

	if res.Message == "" {
		httpx.WriteMessage(w, http.StatusOK, "Company deleted", json.RawMessage(res.Data))
		return
	}
	writeResult(w, http.StatusOK, res)
}
