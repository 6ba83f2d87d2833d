// admin.go - Admin registration, login and management

package services

import (
	"context"

	"go-shop-backend/models"
	"go-shop-backend/validation"
)

// AdminStore is the persistence AdminService needs
type AdminStore interface {
	List(ctx context.Context) ([]models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
	Update(ctx context.Context, id string, changes map[string]any) (*models.Admin, error)
	Delete(ctx context.Context, id string) error
}

// AdminService implements admin registration, login and management
type AdminService struct {
	admins AdminStore
	hasher Hasher
	creds  *credentialCheck
}

func NewAdminService(admins AdminStore, hasher Hasher) *AdminService {
	return &AdminService{admins: admins, hasher: hasher, creds: newCredentialCheck(hasher)}
}

func (s *AdminService) List(ctx context.Context) ([]models.AdminView, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.AdminView, 0, len(admins))
	for i := range admins {
		views = append(views, admins[i].Public())
	}
	return views, nil
}

func (s *AdminService) Get(ctx context.Context, id string) (models.AdminView, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return models.AdminView{}, err
	}
	return admin.Public(), nil
}

// Register hashes the password and stores a new admin
func (s *AdminService) Register(ctx context.Context, reg validation.AdminRegistration) (models.AdminView, error) {
	digest, err := s.hasher.HashPassword(reg.Password)
	if err != nil {
		return models.AdminView{}, err
	}
	admin := &models.Admin{Username: reg.Username, Password: digest, PhoneNumber: reg.PhoneNumber}
	if err := s.admins.Create(ctx, admin); err != nil {
		return models.AdminView{}, err
	}
	return admin.Public(), nil
}

// Login returns the admin matching creds or apperr.ErrInvalidCredentials
func (s *AdminService) Login(ctx context.Context, creds validation.Credentials) (models.AdminView, error) {
	admin, err := s.admins.FindByUsername(ctx, creds.Identifier)
	digest := ""
	if admin != nil {
		digest = admin.Password
	}
	if err := s.creds.verify(err, creds.Password, digest); err != nil {
		return models.AdminView{}, err
	}
	return admin.Public(), nil
}

func (s *AdminService) Update(ctx context.Context, id string, changes validation.Changes) (models.AdminView, error) {
	columns, err := hashChanges(s.hasher, changes)
	if err != nil {
		return models.AdminView{}, err
	}
	admin, err := s.admins.Update(ctx, id, columns)
	if err != nil {
		return models.AdminView{}, err
	}
	return admin.Public(), nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	return s.admins.Delete(ctx, id)
}
