package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go-shop-backend/database"
	"go-shop-backend/events"
	"go-shop-backend/repository"
	"go-shop-backend/services"
	"go-shop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB creates a fresh SQLite file for each test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

// newTestHandler wires real services over db with the cheapest bcrypt cost
func newTestHandler(db *gorm.DB, log *zap.Logger) *Handler {
	hasher := utils.NewPasswordHasher(bcrypt.MinCost)
	return New(Handler{
		Admins:    services.NewAdminService(repository.NewAdminRepository(db), hasher),
		Sellers:   services.NewSellerService(repository.NewSellerRepository(db), hasher),
		Customers: services.NewCustomerService(repository.NewCustomerRepository(db), hasher),
		Products:  services.NewProductService(repository.NewProductRepository(db), events.NopPublisher{}, log),
		Log:       log,
	})
}

// setupRouter mounts the handlers the same way routes.SetupRouter does,
// without auth
func setupRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.GET("/health", Health)

	r.GET("/admin", h.ListAdmins)
	r.GET("/admin/:id", h.GetAdmin)
	r.POST("/admin", h.CreateAdmin)
	r.POST("/admin/login", h.LoginAdmin)
	r.PATCH("/admin/:id", h.UpdateAdmin)
	r.DELETE("/admin/:id", h.DeleteAdmin)

	for path, a := range map[string]*AccountHandlers{"/seller": h.SellerHandlers(), "/customer": h.CustomerHandlers()} {
		r.GET(path, a.List)
		r.GET(path+"/:id", a.Get)
		r.POST(path, a.Register)
		r.POST(path+"/login", a.Login)
		r.PATCH(path+"/:id", a.Update)
		r.DELETE(path+"/:id", a.Delete)
	}
	r.GET("/seller/:id/products", h.ListSellerProducts)

	r.GET("/product", h.ListProducts)
	r.GET("/product/:id", h.GetProduct)
	r.POST("/product", h.CreateProduct)
	r.PATCH("/product/:id", h.UpdateProduct)
	r.DELETE("/product/:id", h.DeleteProduct)
	return r
}

// performRequest sends body (raw string or any JSON value) and records the
// response
func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	switch b := body.(type) {
	case nil:
		buf = &bytes.Buffer{}
	case string:
		buf = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		buf = bytes.NewBuffer(raw)
	}
	req, _ := http.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into a generic map
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
