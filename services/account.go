// account.go - Seller and customer registration, login and management

package services

import (
	"context"

	"go-shop-backend/models"
	"go-shop-backend/validation"
)

// AccountStore is the persistence an AccountService needs. It is satisfied by
// repository.SellerRepository and repository.CustomerRepository.
type AccountStore[T any] interface {
	List(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	FindByEmail(ctx context.Context, email string) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, id string, changes map[string]any) (*T, error)
	Delete(ctx context.Context, id string) error
}

type accountModel[T any] interface {
	*T
	Public() models.AccountView
	Digest() string
}

// AccountService implements registration, login and management for the
// email-keyed roles.
type AccountService[T any, P accountModel[T]] struct {
	accounts AccountStore[T]
	hasher   Hasher
	creds    *credentialCheck
	build    func(reg validation.AccountRegistration, digest string) *T
}

type (
	SellerService   = AccountService[models.Seller, *models.Seller]
	CustomerService = AccountService[models.Customer, *models.Customer]
)

func NewSellerService(sellers AccountStore[models.Seller], hasher Hasher) *SellerService {
	return &SellerService{
		accounts: sellers,
		hasher:   hasher,
		creds:    newCredentialCheck(hasher),
		build: func(reg validation.AccountRegistration, digest string) *models.Seller {
			return &models.Seller{Email: reg.Email, Name: reg.Name, Password: digest, PhoneNumber: reg.PhoneNumber}
		},
	}
}

func NewCustomerService(customers AccountStore[models.Customer], hasher Hasher) *CustomerService {
	return &CustomerService{
		accounts: customers,
		hasher:   hasher,
		creds:    newCredentialCheck(hasher),
		build: func(reg validation.AccountRegistration, digest string) *models.Customer {
			return &models.Customer{Email: reg.Email, Name: reg.Name, Password: digest, PhoneNumber: reg.PhoneNumber}
		},
	}
}

func (s *AccountService[T, P]) List(ctx context.Context) ([]models.AccountView, error) {
	rows, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.AccountView, 0, len(rows))
	for i := range rows {
		views = append(views, P(&rows[i]).Public())
	}
	return views, nil
}

func (s *AccountService[T, P]) Get(ctx context.Context, id string) (models.AccountView, error) {
	row, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return models.AccountView{}, err
	}
	return P(row).Public(), nil
}

// Register hashes the password and stores the new account
func (s *AccountService[T, P]) Register(ctx context.Context, reg validation.AccountRegistration) (models.AccountView, error) {
	digest, err := s.hasher.HashPassword(reg.Password)
	if err != nil {
		return models.AccountView{}, err
	}
	row := s.build(reg, digest)
	if err := s.accounts.Create(ctx, row); err != nil {
		return models.AccountView{}, err
	}
	return P(row).Public(), nil
}

// Login returns the account matching creds or apperr.ErrInvalidCredentials
func (s *AccountService[T, P]) Login(ctx context.Context, creds validation.Credentials) (models.AccountView, error) {
	row, err := s.accounts.FindByEmail(ctx, creds.Identifier)
	digest := ""
	if row != nil {
		digest = P(row).Digest()
	}
	if err := s.creds.verify(err, creds.Password, digest); err != nil {
		return models.AccountView{}, err
	}
	return P(row).Public(), nil
}

func (s *AccountService[T, P]) Update(ctx context.Context, id string, changes validation.Changes) (models.AccountView, error) {
	columns, err := hashChanges(s.hasher, changes)
	if err != nil {
		return models.AccountView{}, err
	}
	row, err := s.accounts.Update(ctx, id, columns)
	if err != nil {
		return models.AccountView{}, err
	}
	return P(row).Public(), nil
}

// Delete removes the account; products it owned keep existing unowned
func (s *AccountService[T, P]) Delete(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}
