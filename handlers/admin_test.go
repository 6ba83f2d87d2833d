// admin_test.go - Tests for admin endpoints and for the internal error path

package handlers

import (
	"errors"
	"net/http"
	"testing"

	"go-shop-backend/repository"
	"go-shop-backend/services"
	"go-shop-backend/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func adminPayload() map[string]any {
	return map[string]any{
		"username":        "root",
		"password":        "secret1",
		"confirmPassword": "secret1",
		"phoneNumber":     "+998901234567",
	}
}

// TestAdminLifecycle - register, read, log in, update and delete an admin
func TestAdminLifecycle(t *testing.T) {
	router := setupRouter(newTestHandler(setupTestDB(t), zap.NewNop()))

	// STEP 1: Register
	w := performRequest(router, http.MethodPost, "/admin", adminPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Admin successfully created", body["message"])
	admin := body["admin"].(map[string]any)
	id := admin["id"].(string)
	assert.Equal(t, "root", admin["username"])
	assert.NotContains(t, admin, "password")

	// STEP 2: Read back
	w = performRequest(router, http.MethodGet, "/admin/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "+998901234567", decode(t, w)["admin"].(map[string]any)["phoneNumber"])

	// STEP 3: Log in
	w = performRequest(router, http.MethodPost, "/admin/login", map[string]string{"username": "root", "password": "secret1"})
	assert.Equal(t, http.StatusOK, w.Code)

	wrong := performRequest(router, http.MethodPost, "/admin/login", map[string]string{"username": "root", "password": "secret2"})
	unknown := performRequest(router, http.MethodPost, "/admin/login", map[string]string{"username": "ghost", "password": "secret1"})
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())

	// STEP 4: Partial update
	w = performRequest(router, http.MethodPatch, "/admin/"+id, map[string]string{"phone_number": "+998907654321"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)["admin"].(map[string]any)
	assert.Equal(t, "root", updated["username"])
	assert.Equal(t, "+998907654321", updated["phoneNumber"])

	// STEP 5: Delete twice
	w = performRequest(router, http.MethodDelete, "/admin/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = performRequest(router, http.MethodDelete, "/admin/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Admin not found"}`, w.Body.String())
}

func TestAdminRegisterValidation(t *testing.T) {
	router := setupRouter(newTestHandler(setupTestDB(t), zap.NewNop()))

	tests := []struct {
		name  string
		patch map[string]any
		field string
		msg   string
	}{
		{"username too short", map[string]any{"username": "r"}, "username", "Username must be between 2 and 16 characters"},
		{"username too long", map[string]any{"username": "abcdefghijklmnopq"}, "username", "Username must be between 2 and 16 characters"},
		{"password too long", map[string]any{"password": "12345678901234567", "confirmPassword": "12345678901234567"}, "password", "Password must be between 6 and 16 characters"},
		{"confirmation mismatch", map[string]any{"confirmPassword": "secret2"}, "confirmPassword", "Passwords don't match"},
		{"phone without country code", map[string]any{"phoneNumber": "901234567"}, "phoneNumber", "Phone number must be in the format +998XXXXXXXXX"},
		{"phone with other country", map[string]any{"phoneNumber": "+778901234567"}, "phoneNumber", "Phone number must be in the format +998XXXXXXXXX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := adminPayload()
			for k, v := range tt.patch {
				payload[k] = v
			}
			w := performRequest(router, http.MethodPost, "/admin", payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.msg, body["fields"].(map[string]any)[tt.field])
			assert.NotEmpty(t, body["error"])
		})
	}

	// boundaries are inclusive
	payload := adminPayload()
	payload["username"] = "ab"
	payload["password"] = "123456"
	payload["confirmPassword"] = "123456"
	w := performRequest(router, http.MethodPost, "/admin", payload)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = performRequest(router, http.MethodGet, "/admin", nil)
	assert.Len(t, decode(t, w)["items"], 1)
}

func TestAdminRegisterSnakeCasePhoneAndConflict(t *testing.T) {
	router := setupRouter(newTestHandler(setupTestDB(t), zap.NewNop()))

	payload := adminPayload()
	delete(payload, "phoneNumber")
	payload["phone_number"] = "+998901234567"
	w := performRequest(router, http.MethodPost, "/admin", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	payload["username"] = "second"
	w = performRequest(router, http.MethodPost, "/admin", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"phoneNumber already exists"}`, w.Body.String())
}

// TestInternalErrorIsGeneric - store failures are logged but never shown
func TestInternalErrorIsGeneric(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	core, logs := observer.New(zap.ErrorLevel)
	h := New(Handler{
		Admins: services.NewAdminService(repository.NewAdminRepository(db), utils.NewPasswordHasher(bcrypt.MinCost)),
		Log:    zap.New(core),
	})
	router := setupRouter(h)

	secret := `pq: relation "admins" does not exist`
	mock.ExpectQuery(`SELECT (.+) FROM "admins"`).WillReturnError(errors.New(secret))

	w := performRequest(router, http.MethodGet, "/admin", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong!"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "relation")
	assert.NoError(t, mock.ExpectationsWereMet())

	entries := logs.FilterMessage("request failed").All()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].ContextMap()["error"], "does not exist")
}

func TestDeleteMissingNeverInternal(t *testing.T) {
	router := setupRouter(newTestHandler(setupTestDB(t), zap.NewNop()))

	for _, path := range []string{"/admin/nope", "/seller/nope", "/customer/nope", "/product/nope"} {
		w := performRequest(router, http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestHealth(t *testing.T) {
	router := setupRouter(newTestHandler(setupTestDB(t), zap.NewNop()))
	w := performRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
