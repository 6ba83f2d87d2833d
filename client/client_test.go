package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go-shop-backend/database"
	"go-shop-backend/handlers"
	"go-shop-backend/repository"
	"go-shop-backend/routes"
	"go-shop-backend/services"
	"go-shop-backend/utils"
	"go-shop-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	hasher := utils.NewPasswordHasher(bcrypt.MinCost)
	h := handlers.New(handlers.Handler{
		Sellers:  services.NewSellerService(repository.NewSellerRepository(db), hasher),
		Products: services.NewProductService(repository.NewProductRepository(db), nil, nil),
	})

	srv := httptest.NewServer(routes.SetupRouter(h, routes.Options{}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSellerFlow(t *testing.T) {
	ctx := context.Background()
	c := New(setupServer(t).URL + "/")

	seller, err := c.RegisterSeller(ctx, validation.AccountCreateInput{
		Email: "s@shop.uz", Name: "Seller", Password: "secret1", ConfirmPassword: "secret1", PhoneNumber: "998901234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "+998901234567", seller.PhoneNumber)

	loggedIn, token, err := c.LoginSeller(ctx, "s@shop.uz", "secret1")
	require.NoError(t, err)
	assert.Equal(t, seller.ID, loggedIn.ID)
	assert.Empty(t, token)

	product, err := c.CreateProduct(ctx, validation.ProductCreateInput{
		Name: "Lamp", Description: "Desk lamp", Price: "10.5", Quantity: "2",
		ImageURL: "https://img.example/lamp.png", Category: "home", SellerID: seller.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, product.Seller)
	assert.Equal(t, seller.ID, product.Seller.ID)

	products, err := c.SellerProducts(ctx, seller.ID)
	require.NoError(t, err)
	assert.Len(t, products, 1)

	updated, err := c.UpdateProduct(ctx, product.ID, map[string]any{"quantity": 5})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	require.NoError(t, c.DeleteProduct(ctx, product.ID))
	products, err = c.SellerProducts(ctx, seller.ID)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestAPIErrors(t *testing.T) {
	ctx := context.Background()
	c := New(setupServer(t).URL)

	_, _, err := c.LoginSeller(ctx, "nobody@shop.uz", "secret1")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid credentials", apiErr.Message)

	_, err = c.RegisterSeller(ctx, validation.AccountCreateInput{Email: "bad"})
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Invalid email address", apiErr.Fields["email"])

	err = c.DeleteProduct(ctx, "missing")
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}
