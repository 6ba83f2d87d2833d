// product.go - Handles the product catalogue

package handlers

import (
	"net/http"

	"go-shop-backend/validation"

	"github.com/gin-gonic/gin"
)

// ListProducts - GET /api/product
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Products retrieved", "items": products})
}

// ListSellerProducts - GET /api/seller/:id/products
func (h *Handler) ListSellerProducts(c *gin.Context) {
	products, err := h.Products.ListBySeller(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Products retrieved", "items": products})
}

// GetProduct - GET /api/product/:id
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product retrieved", "product": product})
}

// CreateProduct - POST /api/product
func (h *Handler) CreateProduct(c *gin.Context) {
	var input validation.ProductCreateInput
	if err := bindJSON(c, &input); err != nil {
		h.respondError(c, err)
		return
	}
	draft, err := h.Validator.ProductCreate(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := h.Products.Create(c.Request.Context(), draft)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product successfully created", "product": product})
}

// UpdateProduct - PATCH /api/product/:id
func (h *Handler) UpdateProduct(c *gin.Context) {
	var input validation.ProductUpdateInput
	if err := bindJSON(c, &input); err != nil {
		h.respondError(c, err)
		return
	}
	changes, err := h.Validator.ProductUpdate(input)
	if err != nil {
		h.respondError(c, err)
		return
	}

	product, err := h.Products.Update(c.Request.Context(), c.Param("id"), changes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct - DELETE /api/product/:id
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// Health - GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
