// account.go - Seller and customer persistence

package repository

import (
	"context"
	"fmt"

	"go-shop-backend/apperr"
	"go-shop-backend/models"

	"gorm.io/gorm"
)

var accountKeys = []uniqueKey{
	{column: "email", field: "email"},
	{column: "phone_number", field: "phoneNumber"},
}

// account covers the two tables keyed by email and phone number
type account interface {
	models.Seller | models.Customer
}

// accountRepository is the shared implementation behind SellerRepository and
// CustomerRepository.
type accountRepository[T account] struct {
	DB          *gorm.DB
	entity      string
	ownerColumn string // products column referencing this table
	notFound    error
}

func (r *accountRepository[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := newestFirst(r.DB.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list %ss: %w", r.entity, err)
	}
	return rows, nil
}

func (r *accountRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return r.findBy(ctx, "id", id)
}

// FindByEmail looks a record up by its unique email
func (r *accountRepository[T]) FindByEmail(ctx context.Context, email string) (*T, error) {
	return r.findBy(ctx, "email", email)
}

// FindByPhoneNumber looks a record up by its unique, +-prefixed phone number
func (r *accountRepository[T]) FindByPhoneNumber(ctx context.Context, phone string) (*T, error) {
	return r.findBy(ctx, "phone_number", phone)
}

func (r *accountRepository[T]) findBy(ctx context.Context, column, value string) (*T, error) {
	var row T
	if err := r.DB.WithContext(ctx).Where(column+" = ?", value).First(&row).Error; err != nil {
		return nil, findErr("find "+r.entity, err, r.notFound)
	}
	return &row, nil
}

func (r *accountRepository[T]) create(ctx context.Context, row *T, email, phone string) error {
	values := map[string]any{"email": email, "phone_number": phone}
	if err := ensureUnique(ctx, r.DB, new(T), accountKeys, values, ""); err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Create(row).Error; err != nil {
		return writeErr("create "+r.entity, err)
	}
	return nil
}

// Update applies changes (column -> value) to an existing record
func (r *accountRepository[T]) Update(ctx context.Context, id string, changes map[string]any) (*T, error) {
	row, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return row, nil
	}
	if err := ensureUnique(ctx, r.DB, new(T), accountKeys, changes, id); err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(row).Updates(changes).Error; err != nil {
		return nil, writeErr("update "+r.entity, err)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the record and detaches it from any products it owned
func (r *accountRepository[T]) Delete(ctx context.Context, id string) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Product{}).Where(r.ownerColumn+" = ?", id).Update(r.ownerColumn, nil).Error; err != nil {
			return fmt.Errorf("detach %s products: %w", r.entity, err)
		}
		result := tx.Where("id = ?", id).Delete(new(T))
		if result.Error != nil {
			return fmt.Errorf("delete %s: %w", r.entity, result.Error)
		}
		if result.RowsAffected == 0 {
			return r.notFound
		}
		return nil
	})
}

// SellerRepository stores sellers
type SellerRepository struct {
	accountRepository[models.Seller]
}

func NewSellerRepository(db *gorm.DB) *SellerRepository {
	return &SellerRepository{accountRepository[models.Seller]{
		DB:          db,
		entity:      "seller",
		ownerColumn: "seller_id",
		notFound:    apperr.ErrSellerNotFound,
	}}
}

// Create inserts seller after checking email and phone number are free
func (r *SellerRepository) Create(ctx context.Context, seller *models.Seller) error {
	return r.create(ctx, seller, seller.Email, seller.PhoneNumber)
}

// CustomerRepository stores customers
type CustomerRepository struct {
	accountRepository[models.Customer]
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{accountRepository[models.Customer]{
		DB:          db,
		entity:      "customer",
		ownerColumn: "customer_id",
		notFound:    apperr.ErrCustomerNotFound,
	}}
}

// Create inserts customer after checking email and phone number are free
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return r.create(ctx, customer, customer.Email, customer.PhoneNumber)
}
