package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go-shop-backend/database"
	"go-shop-backend/handlers"
	"go-shop-backend/repository"
	"go-shop-backend/routes"
	"go-shop-backend/services"
	"go-shop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type cli struct {
	env map[string]string
}

func newCLI(t *testing.T) *cli {
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

	return &cli{env: map[string]string{
		"SHOPCTL_SERVER":       srv.URL,
		"SHOPCTL_SESSION_FILE": filepath.Join(t.TempDir(), "session.json"),
	}}
}

func (c *cli) run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, func(k string) string { return c.env[k] })
	return code, stdout.String(), stderr.String()
}

func TestGatedCommandsRedirect(t *testing.T) {
	c := newCLI(t)

	for _, cmd := range []string{"products", "add-product", "update-product", "delete-product"} {
		code, _, stderr := c.run(cmd)
		assert.Equal(t, 3, code, cmd)
		assert.Contains(t, stderr, "/seller/login", cmd)
	}

	code, stdout, _ := c.run("whoami")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "not logged in")
}

func TestSellerSession(t *testing.T) {
	c := newCLI(t)

	code, _, stderr := c.run("register", "-email", "s@shop.uz", "-name", "Seller", "-password", "secret1", "-phone", "998901234567")
	require.Equal(t, 0, code, stderr)

	code, _, stderr = c.run("login", "-email", "s@shop.uz", "-password", "wrongpass")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Invalid credentials")

	code, stdout, stderr := c.run("login", "-email", "s@shop.uz", "-password", "secret1")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "logged in as Seller")

	code, stdout, _ = c.run("whoami")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "s@shop.uz")

	code, _, stderr = c.run("add-product", "-name", "Lamp", "-description", "Desk lamp", "-price", "10.5",
		"-quantity", "2", "-image", "https://img.example/lamp.png", "-category", "home")
	require.Equal(t, 0, code, stderr)

	code, stdout, _ = c.run("products")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Lamp")
	assert.Contains(t, stdout, "10.50")

	code, _, stderr = c.run("add-product", "-name", "Broken", "-price", "-1")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "400")

	code, _, _ = c.run("logout")
	assert.Equal(t, 0, code)
	code, _, _ = c.run("products")
	assert.Equal(t, 3, code)
}

func TestUnknownCommand(t *testing.T) {
	c := newCLI(t)
	code, _, stderr := c.run("frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "unknown command")

	code, _, _ = c.run()
	assert.Equal(t, 2, code)
}
