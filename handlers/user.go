// user.go - Handles seller and customer registration, login and management

package handlers

import (
	"net/http"

	"go-shop-backend/utils"
	"go-shop-backend/validation"

	"github.com/gin-gonic/gin"
)

// AccountHandlers serves one of the email-keyed collections
type AccountHandlers struct {
	h       *Handler
	service AccountService
	key     string // JSON key of the record in responses
	label   string // capitalised entity name used in messages
	role    string
}

// SellerHandlers serves /api/seller
func (h *Handler) SellerHandlers() *AccountHandlers {
	return &AccountHandlers{h: h, service: h.Sellers, key: "seller", label: "Seller", role: utils.RoleSeller}
}

// CustomerHandlers serves /api/customer
func (h *Handler) CustomerHandlers() *AccountHandlers {
	return &AccountHandlers{h: h, service: h.Customers, key: "customer", label: "Customer", role: utils.RoleCustomer}
}

func (a *AccountHandlers) List(c *gin.Context) {
	accounts, err := a.service.List(c.Request.Context())
	if err != nil {
		a.h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": a.label + "s retrieved", "items": accounts})
}

func (a *AccountHandlers) Get(c *gin.Context) {
	account, err := a.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		a.h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": a.label + " retrieved", a.key: account})
}

// Register - POST /api/<collection>
func (a *AccountHandlers) Register(c *gin.Context) {
	var input validation.AccountCreateInput
	if err := bindJSON(c, &input); err != nil {
		a.h.respondError(c, err)
		return
	}
	reg, err := a.h.Validator.AccountCreate(input)
	if err != nil {
		a.h.respondError(c, err)
		return
	}

	account, err := a.service.Register(c.Request.Context(), reg)
	if err != nil {
		a.h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": a.label + " successfully created", a.key: account})
}

// Login - POST /api/<collection>/login
func (a *AccountHandlers) Login(c *gin.Context) {
	var input validation.AccountLoginInput
	if err := bindJSON(c, &input); err != nil {
		a.h.respondError(c, err)
		return
	}
	creds, err := a.h.Validator.AccountLogin(input)
	if err != nil {
		a.h.respondError(c, err)
		return
	}

	account, err := a.service.Login(c.Request.Context(), creds)
	if err != nil {
		a.h.respondError(c, err)
		return
	}

	body := gin.H{"message": "Login successful", a.key: account}
	token, err := a.h.issueToken(account.ID, a.role)
	if err != nil {
		a.h.respondError(c, err)
		return
	}
	if token != "" {
		body["token"] = token
	}
	c.JSON(http.StatusOK, body)
}

// Update - PATCH /api/<collection>/:id
func (a *AccountHandlers) Update(c *gin.Context) {
	var input validation.AccountUpdateInput
	if err := bindJSON(c, &input); err != nil {
		a.h.respondError(c, err)
		return
	}
	changes, err := a.h.Validator.AccountUpdate(input)
	if err != nil {
		a.h.respondError(c, err)
		return
	}

	account, err := a.service.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		a.h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": a.label + " updated", a.key: account})
}

func (a *AccountHandlers) Delete(c *gin.Context) {
	if err := a.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		a.h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": a.label + " deleted successfully"})
}
