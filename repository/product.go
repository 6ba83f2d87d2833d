// product.go - Product persistence with owner lookups

package repository

import (
	"context"
	"fmt"

	"go-shop-backend/apperr"
	"go-shop-backend/models"

	"gorm.io/gorm"
)

// ProductRepository stores products and resolves their owners
type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// withOwners preloads the id/name/email of the seller and customer
func withOwners(db *gorm.DB) *gorm.DB {
	identity := func(tx *gorm.DB) *gorm.DB { return tx.Select("id", "name", "email") }
	return db.Preload("Seller", identity).Preload("Customer", identity)
}

// List returns every product with its owners, newest first
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := newestFirst(withOwners(r.DB.WithContext(ctx))).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ListBySeller returns the products owned by sellerID, failing when the
// seller does not exist.
func (r *ProductRepository) ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	if err := r.ensureExists(ctx, &models.Seller{}, sellerID, apperr.ErrSellerNotFound); err != nil {
		return nil, err
	}
	var products []models.Product
	err := newestFirst(withOwners(r.DB.WithContext(ctx))).Where("seller_id = ?", sellerID).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list seller products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := withOwners(r.DB.WithContext(ctx)).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, findErr("find product", err, apperr.ErrProductNotFound)
	}
	return &product, nil
}

// Create checks the optional seller and customer references, inserts the
// product and returns it with owners loaded.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.SellerID != nil {
		if err := r.ensureExists(ctx, &models.Seller{}, *product.SellerID, apperr.ErrSellerNotFound); err != nil {
			return nil, err
		}
	}
	if product.CustomerID != nil {
		if err := r.ensureExists(ctx, &models.Customer{}, *product.CustomerID, apperr.ErrCustomerNotFound); err != nil {
			return nil, err
		}
	}

	// associations are referenced by id only
	product.Seller, product.Customer = nil, nil
	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return nil, writeErr("create product", err)
	}
	return r.FindByID(ctx, product.ID)
}

// Update applies changes (column -> value) to an existing product
func (r *ProductRepository) Update(ctx context.Context, id string, changes map[string]any) (*models.Product, error) {
	if err := r.ensureExists(ctx, &models.Product{}, id, apperr.ErrProductNotFound); err != nil {
		return nil, err
	}
	if len(changes) > 0 {
		err := r.DB.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(changes).Error
		if err != nil {
			return nil, writeErr("update product", err)
		}
	}
	return r.FindByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.ensureExists(ctx, &models.Product{}, id, apperr.ErrProductNotFound); err != nil {
		return err
	}
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	if result.Error != nil {
		return fmt.Errorf("delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) ensureExists(ctx context.Context, model any, id string, notFound error) error {
	var count int64
	if err := r.DB.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check existence: %w", err)
	}
	if count == 0 {
		return notFound
	}
	return nil
}
