// admin.go - Admin persistence

package repository

import (
	"context"
	"fmt"

	"go-shop-backend/apperr"
	"go-shop-backend/models"

	"gorm.io/gorm"
)

var adminKeys = []uniqueKey{
	{column: "username", field: "username"},
	{column: "phone_number", field: "phoneNumber"},
}

// AdminRepository stores admins
type AdminRepository struct {
	DB *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{DB: db}
}

// List returns every admin, newest first
func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := newestFirst(r.DB.WithContext(ctx)).Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, findErr("find admin", err, apperr.ErrAdminNotFound)
	}
	return &admin, nil
}

// FindByUsername looks an admin up by its unique login name
func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, findErr("find admin by username", err, apperr.ErrAdminNotFound)
	}
	return &admin, nil
}

// Create inserts admin after checking username and phone number are free
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	values := map[string]any{"username": admin.Username, "phone_number": admin.PhoneNumber}
	if err := ensureUnique(ctx, r.DB, &models.Admin{}, adminKeys, values, ""); err != nil {
		return err
	}
	if err := r.DB.WithContext(ctx).Create(admin).Error; err != nil {
		return writeErr("create admin", err)
	}
	return nil
}

// Update applies changes (column -> value) to an existing admin
func (r *AdminRepository) Update(ctx context.Context, id string, changes map[string]any) (*models.Admin, error) {
	admin, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(changes) == 0 {
		return admin, nil
	}
	if err := ensureUnique(ctx, r.DB, &models.Admin{}, adminKeys, changes, id); err != nil {
		return nil, err
	}
	if err := r.DB.WithContext(ctx).Model(admin).Updates(changes).Error; err != nil {
		return nil, writeErr("update admin", err)
	}
	return r.FindByID(ctx, id)
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}
	result := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Admin{})
	if result.Error != nil {
		return fmt.Errorf("delete admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.ErrAdminNotFound
	}
	return nil
}
