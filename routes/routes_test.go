// routes_test.go - Tests for the route table, auth mode and CORS

package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go-shop-backend/database"
	"go-shop-backend/events"
	"go-shop-backend/handlers"
	"go-shop-backend/middleware"
	"go-shop-backend/repository"
	"go-shop-backend/services"
	"go-shop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T, authRequired bool) (*gin.Engine, *utils.TokenIssuer) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	hasher := utils.NewPasswordHasher(bcrypt.MinCost)
	issuer := utils.NewTokenIssuer("test-secret", time.Hour)
	h := handlers.New(handlers.Handler{
		Admins:    services.NewAdminService(repository.NewAdminRepository(db), hasher),
		Sellers:   services.NewSellerService(repository.NewSellerRepository(db), hasher),
		Customers: services.NewCustomerService(repository.NewCustomerRepository(db), hasher),
		Products:  services.NewProductService(repository.NewProductRepository(db), events.NopPublisher{}, nil),
	})
	if authRequired {
		h.Tokens = issuer
	}
	r := SetupRouter(h, Options{
		CORSOrigins:  []string{"http://localhost:3000"},
		AuthRequired: authRequired,
		Tokens:       issuer,
	})
	return r, issuer
}

func request(r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var sellerBody = map[string]any{
	"email": "s@shop.uz", "name": "Seller", "password": "secret1",
	"confirmPassword": "secret1", "phoneNumber": "998901234567",
}

var productBody = map[string]any{
	"name": "Lamp", "description": "Desk lamp", "price": 10, "quantity": 1,
	"imageUrl": "https://img.example/lamp.png", "category": "home",
}

func TestRoutesOpenByDefault(t *testing.T) {
	r, _ := setupRouter(t, false)

	w := request(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = request(r, http.MethodPost, "/api/seller", "", sellerBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = request(r, http.MethodPost, "/api/seller/login", "", map[string]string{"email": "s@shop.uz", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "token")

	w = request(r, http.MethodPost, "/api/product", "", productBody)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = request(r, http.MethodGet, "/api/product", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSellerProductRoutes(t *testing.T) {
	r, _ := setupRouter(t, false)

	w := request(r, http.MethodPost, "/api/seller", "", sellerBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Seller struct {
			ID string `json:"id"`
		} `json:"seller"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	body := map[string]any{"sellerId": created.Seller.ID}
	for k, v := range productBody {
		body[k] = v
	}
	w = request(r, http.MethodPost, "/api/product", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for _, path := range []string{
		"/api/seller/" + created.Seller.ID + "/products",
		"/api/product/seller/" + created.Seller.ID,
	} {
		w = request(r, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		var out struct {
			Items []map[string]any `json:"items"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		assert.Len(t, out.Items, 1, path)
	}

	w = request(r, http.MethodGet, "/api/product/seller/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutesRequireTokenWhenEnabled(t *testing.T) {
	r, issuer := setupRouter(t, true)

	// registration and login stay public
	w := request(r, http.MethodPost, "/api/seller", "", sellerBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = request(r, http.MethodPost, "/api/product", "", productBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = request(r, http.MethodPost, "/api/seller/login", "", map[string]string{"email": "s@shop.uz", "password": "secret1"})
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	w = request(r, http.MethodPost, "/api/product", login.Token, productBody)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// sellers cannot manage admins
	w = request(r, http.MethodDelete, "/api/admin/any", login.Token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken, err := issuer.GenerateToken("admin-1", utils.RoleAdmin)
	require.NoError(t, err)
	w = request(r, http.MethodDelete, "/api/admin/any", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// reads stay public
	w = request(r, http.MethodGet, "/api/product", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	r, _ := setupRouter(t, false)

	req, _ := http.NewRequest(http.MethodOptions, "/api/product", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	cfg := corsConfig([]string{"*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.False(t, cfg.AllowCredentials)
}
