package http

import (
	"encoding/json"
	"net/http"

	"github.com/tigaron/partner-admin/internal/console/domain"
	"github.com/tigaron/partner-admin/internal/console/service"
	"github.com/tigaron/partner-admin/internal/console/validate"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
	"github.com/tigaron/partner-admin/pkg/httpx"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

type CompaniesHandler struct {
	CompanyService *service.CompanyService
}

// writeResult forwards a normalized backend result in the console envelope.
// Raw arrays and bare objects come out as {"success": true, "data": ...}.
func writeResult(w http.ResponseWriter, code int, res *gatewaysdk.Result) {
	if res.Message != "" {
		httpx.WriteMessage(w, code, res.Message, json.RawMessage(res.Data))
		return
	}
	httpx.WriteData(w, code, json.RawMessage(res.Data))
}

// HandleList handles the company list endpoint
//
//	@Summary		List companies
//	@Description	Fetches every partner record from the backend. Raw backend arrays are
//	@Description	wrapped into the standard success envelope.
//	@Tags			Companies
//	@Produce		json
//	@Success		200	{object}	map[string]any	"success, data: array of companies"
//	@Failure		401	{object}	map[string]any	"Unauthorized"
//	@Failure		500	{object}	map[string]any	"Backend unreachable"
//	@Security		BearerAuth
//	@Router			/api/companies [get].
func (h *CompaniesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := httpx.TokenFromContext(ctx)

	res, err := h.CompanyService.List(ctx, token)
	if err != nil {
		writeProxyError(w, log, err, "Failed to fetch companies")
		return
	}

	writeResult(w, http.StatusOK, res)
}

// HandleCreate handles the company create endpoint
//
//	@Summary		Create company
//	@Description	Validates required fields locally, shapes the payload, and forwards it to
//	@Description	the backend. company_id and contract dates are sent only when provided.
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.CreateCompanyForm	true	"Company form"
//	@Success		201		{object}	map[string]any				"success, data: created company"
//	@Failure		400		{object}	map[string]any				"Invalid JSON payload or missing required field"
//	@Failure		401		{object}	map[string]any				"Unauthorized"
//	@Security		BearerAuth
//	@Router			/api/companies [post].
func (h *CompaniesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	token := httpx.TokenFromContext(ctx)

	var form domain.CreateCompanyForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	res, err := h.CompanyService.Create(ctx, token, form)
	if err != nil {
		writeProxyError(w, log, err, "Failed to create company")
		return
	}

	writeResult(w, http.StatusCreated, res)
}

type validateResponseData struct {
	Valid      bool                     `json:"valid"`
	Errors     validate.FieldErrors     `json:"errors"`
	Normalized domain.CreateCompanyForm `json:"normalized"`
}

// HandleValidate handles the form validation endpoint
//
//	@Summary		Validate company form
//	@Description	Runs the company form rules without touching the backend. Returns per-field
//	@Description	messages and the normalized form (trimmed fields, digits-only phone).
//	@Tags			Companies
//	@Accept			json
//	@Produce		json
//	@Param			request	body		domain.CreateCompanyForm	true	"Company form"
//	@Success		200		{object}	map[string]any				"success, data with valid / errors / normalized"
//	@Failure		400		{object}	map[string]any				"Invalid JSON payload"
//	@Security		BearerAuth
//	@Router			/api/companies/validate [post].
func (h *CompaniesHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var form domain.CreateCompanyForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	normalized, fieldErrors := validate.CompanyForm(form)

	httpx.WriteData(w, http.StatusOK, validateResponseData{
		Valid:      len(fieldErrors) == 0,
		Errors:     fieldErrors,
		Normalized: normalized,
	})
}
