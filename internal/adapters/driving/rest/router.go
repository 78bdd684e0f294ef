package rest

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driving/rest/openapi"
	"github.com/mapmarket/mapmarket-api/internal/core/ports/driving"
)

// Services are the driving ports the API calls into.
type Services struct {
	Products  driving.ProductService
	Locations driving.LocationService
	Auth      driving.AuthService
}

// App holds handler dependencies.
type App struct {
	products  driving.ProductService
	locations driving.LocationService
	auth      driving.AuthService
	limiter   *RateLimiter
}

// NewApp creates the handler set. A nil limiter disables throttling.
func NewApp(services Services, limiter *RateLimiter) *App {
	return &App{
		products:  services.Products,
		locations: services.Locations,
		auth:      services.Auth,
		limiter:   limiter,
	}
}

// NewRouter registers HTTP routes and returns the handler with middleware.
func NewRouter(app *App) http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("GET /api/v1/produto", app.listProducts)
	api.HandleFunc("GET /api/v1/produto/{id}", app.getProduct)
	api.HandleFunc("POST /api/v1/produto", app.createProduct)
	api.HandleFunc("PUT /api/v1/produto/{id}", app.updateProduct)
	api.HandleFunc("DELETE /api/v1/produto/{id}", app.deleteProduct)
	api.HandleFunc("GET /api/v1/location", app.listLocations)
	api.HandleFunc("GET /api/v1/location/{id}", app.getLocation)
	api.HandleFunc("GET /api/v1/location/product/{productId}", app.getLocationByProduct)
	api.HandleFunc("PUT /api/v1/location/{locationId}/product/{productId}", app.subscribeProduct)
	api.HandleFunc("DELETE /api/v1/location/{locationId}/product", app.unsubscribeProduct)

	mux := http.NewServeMux()
	mux.Handle("/api/", WithAuth(app.auth, api))
	mux.HandleFunc("POST /auth/signin", app.signin)
	mux.HandleFunc("PUT /auth/refresh/{username}", app.refresh)
	mux.HandleFunc("POST /auth/token", app.token)
	mux.HandleFunc("GET /healthz", healthHandler)
	mux.HandleFunc("GET /openapi.yaml", openapiHandler)
	mux.HandleFunc("GET /docs", docsHandler)

	handler := WithRecovery(WithRateLimit(app.limiter, mux))
	handler = otelhttp.NewHandler(handler, "mapmarket-api",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
	return WithRequestID(WithLogging(handler))
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func openapiHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(openapi.YAML)
}

func docsHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(docsHTML))
}

const docsHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>MapMarket API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
