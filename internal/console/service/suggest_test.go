package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

func TestSuggest_BackendChecked(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"company_id":"PT-OTH-001"},{"company_id":"PT-OTH-002"}]`))
	}))
	defer backend.Close()

	svc := &SuggestService{Gateway: gatewaysdk.NewClient(backend.URL)}

	got := svc.Suggest(context.Background(), "tok", "Maju Jaya")
	require.Equal(t, "backend", got.Source)
	require.Regexp(t, `^PT-MAJ-\d{3}$`, got.CompanyCode)
	require.Regexp(t, `^PKS-\d{4}-\d{3}$`, got.PKSNumber)
}

func TestSuggest_FallsBackWhenBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	svc := &SuggestService{Gateway: gatewaysdk.NewClient(backend.URL)}

	got := svc.Suggest(context.Background(), "tok", "Maju Jaya")
	require.Equal(t, "local", got.Source)
	require.Regexp(t, `^PT-MAJ-\d{3}$`, got.CompanyCode)
}

func TestSuggest_FallsBackOnSlowBackend(t *testing.T) {
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		backend.Close()
	}()

	svc := &SuggestService{
		Gateway: gatewaysdk.NewClient(backend.URL),
		Timeout: 50 * time.Millisecond,
	}

	start := time.Now()
	got := svc.Suggest(context.Background(), "tok", "Maju Jaya")
	require.Less(t, time.Since(start), 2*time.Second)
	require.Equal(t, "local", got.Source)
}

func TestSuggest_AvoidsCollisions(t *testing.T) {
	// Every code the clock would produce for this millisecond is taken;
	// the service must walk forward until it finds a free one.
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"company_id":"PT-MAJ-000"}]`))
	}))
	defer backend.Close()

	svc := &SuggestService{Gateway: gatewaysdk.NewClient(backend.URL)}

	got := svc.Suggest(context.Background(), "tok", "Maju Jaya")
	require.NotEqual(t, "PT-MAJ-000", got.CompanyCode)
}
