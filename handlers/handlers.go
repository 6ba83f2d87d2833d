// handlers.go - Shared dependencies of the HTTP handlers

package handlers

import (
	"context"

	"go-shop-backend/models"
	"go-shop-backend/validation"

	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// AdminService is implemented by services.AdminService
type AdminService interface {
	List(ctx context.Context) ([]models.AdminView, error)
	Get(ctx context.Context, id string) (models.AdminView, error)
	Register(ctx context.Context, reg validation.AdminRegistration) (models.AdminView, error)
	Login(ctx context.Context, creds validation.Credentials) (models.AdminView, error)
	Update(ctx context.Context, id string, changes validation.Changes) (models.AdminView, error)
	Delete(ctx context.Context, id string) error
}

// AccountService is implemented by services.SellerService and
// services.CustomerService
type AccountService interface {
	List(ctx context.Context) ([]models.AccountView, error)
	Get(ctx context.Context, id string) (models.AccountView, error)
	Register(ctx context.Context, reg validation.AccountRegistration) (models.AccountView, error)
	Login(ctx context.Context, creds validation.Credentials) (models.AccountView, error)
	Update(ctx context.Context, id string, changes validation.Changes) (models.AccountView, error)
	Delete(ctx context.Context, id string) error
}

// ProductService is implemented by services.ProductService
type ProductService interface {
	List(ctx context.Context) ([]models.ProductView, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.ProductView, error)
	Get(ctx context.Context, id string) (models.ProductView, error)
	Create(ctx context.Context, draft validation.ProductDraft) (models.ProductView, error)
	Update(ctx context.Context, id string, changes validation.Changes) (models.ProductView, error)
	Delete(ctx context.Context, id string) error
}

// TokenIssuer signs login tokens; utils.TokenIssuer implements it
type TokenIssuer interface {
	GenerateToken(id, role string) (string, error)
}

// Handler serves every /api endpoint
type Handler struct {
	Validator *validation.Validator
	Admins    AdminService
	Sellers   AccountService
	Customers AccountService
	Products  ProductService
	Tokens    TokenIssuer // nil: login responses carry no token
	Log       *zap.Logger
}

// New fills in defaults and switches JSON binding to strict mode, so bodies
// with unknown fields are rejected.
func New(h Handler) *Handler {
	binding.EnableDecoderDisallowUnknownFields = true
	if h.Validator == nil {
		h.Validator = validation.New()
	}
	if h.Log == nil {
		h.Log = zap.NewNop()
	}
	return &h
}

// issueToken returns a token for a successful login, or "" when tokens are
// not enabled.
func (h *Handler) issueToken(id, role string) (string, error) {
	if h.Tokens == nil {
		return "", nil
	}
	return h.Tokens.GenerateToken(id, role)
}
