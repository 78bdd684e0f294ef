package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/auth"
	"github.com/mapmarket/mapmarket-api/internal/adapters/driven/storage/memory"
	"github.com/mapmarket/mapmarket-api/internal/core/domain"
	"github.com/mapmarket/mapmarket-api/internal/core/services"
)

const (
	testUser     = "leandro"
	testPassword = "admin123"
)

// testAPI is a router wired to memory stores with one registered user.
type testAPI struct {
	t       *testing.T
	handler http.Handler
	limiter *RateLimiter
	token   *domain.Token
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	products := memory.NewProductStore()
	locations := memory.NewLocationStore(products, memory.SeedLocations()...)
	users := memory.NewUserStore()

	issuer, err := auth.NewJWTIssuer(domain.AuthSettings{
		Secret:     "test-secret",
		Issuer:     "mapmarket-test",
		AccessTTL:  time.Hour,
		RefreshTTL: 3 * time.Hour,
	})
	require.NoError(t, err)

	authService := services.NewAuthService(users, issuer, auth.NewBcryptHasher(bcrypt.MinCost))
	require.NoError(t, authService.Register(context.Background(), testUser, "Leandro", testPassword))

	token, err := authService.Signin(context.Background(), testUser, testPassword)
	require.NoError(t, err)

	limiter := NewRateLimiter(domain.RateLimitSettings{})
	app := NewApp(Services{
		Products:  services.NewProductService(products),
		Locations: services.NewLocationService(locations, products),
		Auth:      authService,
	}, limiter)

	return &testAPI{t: t, handler: NewRouter(app), limiter: limiter, token: token}
}

// do sends an authenticated request with an optional JSON body.
func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	return a.doWithToken(method, path, body, a.token.AccessToken)
}

func (a *testAPI) doWithToken(method, path string, body any, token string) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

// decode unmarshals a response body into a generic map.
func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	return m
}

// createProduct posts a product and returns its id.
func (a *testAPI) createProduct(name string, price any) int64 {
	a.t.Helper()
	rr := a.do(http.MethodPost, "/api/v1/produto", map[string]any{"nome": name, "preco": price})
	require.Equal(a.t, http.StatusOK, rr.Code, rr.Body.String())
	return int64(decode(a.t, rr)["id"].(float64))
}

func link(t *testing.T, body map[string]any, rel string) string {
	t.Helper()
	links, ok := body["_links"].(map[string]any)
	require.True(t, ok, "missing _links")
	l, ok := links[rel].(map[string]any)
	require.True(t, ok, "missing link %q", rel)
	return l["href"].(string)
}
