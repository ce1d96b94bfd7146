package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tigaron/partner-admin/internal/console/domain"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

func TestBuildCreatePayload_Defaults(t *testing.T) {
	payload := BuildCreatePayload(domain.CreateCompanyForm{
		CompanyName: "Acme",
		PICName:     "Budi",
		PICEmail:    "budi@acme.co.id",
	})

	require.Equal(t, "Acme", payload["company_name"])
	require.Equal(t, "Budi", payload["pic_name"])
	require.Equal(t, "budi@acme.co.id", payload["pic_email"])

	// Optional fields default rather than disappear
	require.Equal(t, "", payload["pic_phone"])
	require.Equal(t, "", payload["notes"])
	require.Equal(t, []string{}, payload["scopes"])

	// Empty optionals are omitted entirely
	require.NotContains(t, payload, "company_id")
	require.NotContains(t, payload, "contract_start")
	require.NotContains(t, payload, "contract_end")
}

func TestBuildCreatePayload_Optionals(t *testing.T) {
	payload := BuildCreatePayload(domain.CreateCompanyForm{
		CompanyName:   "  Acme  ",
		CompanyID:     " PT-ACM-001 ",
		PICName:       "Budi",
		PICEmail:      "budi@acme.co.id",
		PICPhone:      "081234567890",
		Notes:         "vip",
		ContractStart: "2026-01-01",
		ContractEnd:   "2027-01-01",
		Scopes: map[string]bool{
			"lihat_nama":   true,
			"lihat_alamat": false,
		},
	})

	require.Equal(t, "Acme", payload["company_name"])
	require.Equal(t, "PT-ACM-001", payload["company_id"])
	require.Equal(t, "2026-01-01", payload["contract_start"])
	require.Equal(t, "2027-01-01", payload["contract_end"])
	require.Equal(t, []string{"name"}, payload["scopes"])
}

func rawBody(t *testing.T, src string) map[string]json.RawMessage {
	t.Helper()
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(src), &body))
	return body
}

func TestBuildUpdatePayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]any
	}{
		{
			name: "truthy fields included trimmed",
			body: `{"company_name":" Acme ","pic_name":"Budi","pic_email":"b@a.co"}`,
			want: map[string]any{"company_name": "Acme", "pic_name": "Budi", "pic_email": "b@a.co"},
		},
		{
			name: "empty strings dropped for name fields",
			body: `{"company_name":"","pic_name":"  "}`,
			want: map[string]any{},
		},
		{
			name: "company_id only when non-empty",
			body: `{"company_id":"  "}`,
			want: map[string]any{},
		},
		{
			name: "pic_phone forwarded even when empty",
			body: `{"pic_phone":""}`,
			want: map[string]any{"pic_phone": ""},
		},
		{
			name: "pic_phone dropped when not a string",
			body: `{"pic_phone":42}`,
			want: map[string]any{},
		},
		{
			name: "notes forwarded when present and empty",
			body: `{"notes":""}`,
			want: map[string]any{"notes": ""},
		},
		{
			name: "notes null coerced to empty string",
			body: `{"notes":null}`,
			want: map[string]any{"notes": ""},
		},
		{
			name: "status and contract dates when truthy",
			body: `{"status":"Y","contract_start":"2026-01-01","contract_end":""}`,
			want: map[string]any{"status": "Y", "contract_start": "2026-01-01"},
		},
		{
			name: "display status translated to backend code",
			body: `{"status":"active"}`,
			want: map[string]any{"status": "Y"},
		},
		{
			name: "display inactive translated to backend code",
			body: `{"status":"inactive"}`,
			want: map[string]any{"status": "N"},
		},
		{
			name: "unknown keys never forwarded",
			body: `{"api_key":"sneaky","id":"p1"}`,
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BuildUpdatePayload(rawBody(t, tt.body)))
		})
	}
}

func TestCompanyService_CreateRequiresFields(t *testing.T) {
	var backendCalled bool
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}))
	defer backend.Close()

	svc := &CompanyService{Gateway: gatewaysdk.NewClient(backend.URL)}

	_, err := svc.Create(context.Background(), "tok", domain.CreateCompanyForm{PICName: "Budi", PICEmail: "b@a.co"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "company_name is required", verr.Message)
	require.False(t, backendCalled, "validation failures must not reach the backend")
}

func TestCompanyService_UpdateRejectsEmptyPayload(t *testing.T) {
	var backendCalled bool
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendCalled = true
	}))
	defer backend.Close()

	svc := &CompanyService{Gateway: gatewaysdk.NewClient(backend.URL)}

	_, err := svc.Update(context.Background(), "tok", "p1", rawBody(t, `{"company_name":""}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "No fields to update", verr.Message)
	require.False(t, backendCalled)
}

func TestCompanyService_ForwardsShapedUpdate(t *testing.T) {
	var got map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"p1"}}`))
	}))
	defer backend.Close()

	svc := &CompanyService{Gateway: gatewaysdk.NewClient(backend.URL)}

	res, err := svc.Update(context.Background(), "tok", "p1",
		rawBody(t, `{"company_name":"Acme","notes":"","ignored":"x"}`))
	require.NoError(t, err)

	require.Equal(t, map[string]any{"company_name": "Acme", "notes": ""}, got)
	require.JSONEq(t, `{"id":"p1"}`, string(res.Data))
}
