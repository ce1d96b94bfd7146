package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tigaron/partner-admin/internal/console/service"
	"github.com/tigaron/partner-admin/internal/console/store"
	"github.com/tigaron/partner-admin/pkg/httpx"
	"github.com/tigaron/partner-admin/pkg/slogx"

	_ "github.com/tigaron/partner-admin/api/console" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	backendURL   string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	SessionService *service.SessionService
	CompanyService *service.CompanyService
	SuggestService *service.SuggestService
}

func NewRouter(
	backendURL, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		backendURL:   backendURL,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerCompanies()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Partner Admin Console API
//	@version		0.1.0
//	@description	Admin console gateway for managing partner/company tenant records.
//	@description
//	@description				Every company operation is validated locally and forwarded to the
//	@description				partner-management backend with the caller's bearer token.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Backend-issued access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{SessionService: r.SessionService}

	// POST /api/auth/login - strict rate limit by IP + username to slow
	// down credential stuffing
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	r.Mux.Handle("GET /api/auth/session",
		httpx.Chain(http.HandlerFunc(h.HandleSession),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Auth-state change stream; consumers subscribe instead of polling
	eventsHandler := &AuthEventsHandler{Watcher: r.SessionService.Watcher}
	r.Mux.Handle("GET /api/auth/events",
		httpx.Chain(eventsHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerCompanies() {
	h := &CompaniesHandler{CompanyService: r.CompanyService}

	// Read endpoints - lenient limits keyed by token
	securedRead := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.BearerMiddleware(),
			httpx.RateLimitByToken(httpx.LenientLimit),
		)
	}

	// Mutating endpoints - moderate limits keyed by token
	securedWrite := func(next http.HandlerFunc) http.Handler {
		return httpx.Chain(next,
			httpx.BearerMiddleware(),
			httpx.RateLimitByToken(httpx.ModerateLimit),
		)
	}

	r.Mux.Handle("GET /api/companies", securedRead(h.HandleList))
	r.Mux.Handle("POST /api/companies", securedWrite(h.HandleCreate))
	r.Mux.Handle("POST /api/companies/validate", securedRead(h.HandleValidate))

	r.Mux.Handle("GET /api/companies/{id}", securedRead(h.HandleGet))
	r.Mux.Handle("PUT /api/companies/{id}", securedWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/companies/{id}", securedWrite(h.HandleDelete))

	r.Mux.Handle("GET /api/companies/scope-options", securedRead(h.HandleScopeOptions))
	r.Mux.Handle("GET /api/companies/{id}/scopes", securedRead(h.HandleGetScopes))
	r.Mux.Handle("PUT /api/companies/{id}/scopes", securedWrite(h.HandleUpdateScopes))

	r.Mux.Handle("GET /api/companies/{id}/reveal-api-key", securedRead(h.HandleRevealAPIKey))
	r.Mux.Handle("POST /api/companies/{id}/reset-api-key", securedWrite(h.HandleResetAPIKey))

	suggestHandler := &SuggestHandler{SuggestService: r.SuggestService}
	r.Mux.Handle("GET /api/companies/suggest-code",
		httpx.Chain(suggestHandler,
			httpx.BearerMiddleware(),
			httpx.RateLimitByToken(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.backendURL),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
