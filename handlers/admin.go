// admin.go - Handles admin registration, login and management

package handlers

import (
	"net/http"

	"go-shop-backend/utils"
	"go-shop-backend/validation"

	"github.com/gin-gonic/gin"
)

// ListAdmins - GET /api/admin
func (h *Handler) ListAdmins(c *gin.Context) {
	admins, err := h.Admins.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admins retrieved", "items": admins})
}

// GetAdmin - GET /api/admin/:id
func (h *Handler) GetAdmin(c *gin.Context) {
	admin, err := h.Admins.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin retrieved", "admin": admin})
}

// CreateAdmin - POST /api/admin
func (h *Handler) CreateAdmin(c *gin.Context) {
	var input validation.AdminCreateInput
	if err := bindJSON(c, &input); err != nil {
		h.respondError(c, err)
		return
	}
	reg, err := h.Validator.AdminCreate(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	admin, err := h.Admins.Register(c.Request.Context(), reg)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Admin successfully created", "admin": admin})
}

// LoginAdmin - POST /api/admin/login
func (h *Handler) LoginAdmin(c *gin.Context) {
	var input validation.AdminLoginInput
	if err := bindJSON(c, &input); err != nil {
		h.respondError(c, err)
		return
	}
	creds, err := h.Validator.AdminLogin(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	admin, err := h.Admins.Login(c.Request.Context(), creds)
	if err != nil {
		h.respondError(c, err)
		return
	}

	body := gin.H{"message": "Login successful", "admin": admin}
	token, err := h.issueToken(admin.ID, utils.RoleAdmin)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if token != "" {
		body["token"] = token
	}
	c.JSON(http.StatusOK, body)
}

// UpdateAdmin - PATCH /api/admin/:id
func (h *Handler) UpdateAdmin(c *gin.Context) {
	var input validation.AdminUpdateInput
	if err := bindJSON(c, &input); err != nil {
		h.respondError(c, err)
		return
	}
	changes, err := h.Validator.AdminUpdate(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	admin, err := h.Admins.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin updated", "admin": admin})
}

// DeleteAdmin - DELETE /api/admin/:id
func (h *Handler) DeleteAdmin(c *gin.Context) {
	if err := h.Admins.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
