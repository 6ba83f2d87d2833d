// user.go - Defines the three account tables: Admin, Seller and Customer

package models

import "time"

// Admin is a back-office account identified by username
type Admin struct {
	Base
	Username    string `gorm:"type:varchar(16);uniqueIndex:idx_admins_username;not null"`      // Login name, unique
	Password    string `gorm:"not null" json:"-"`                                               // bcrypt digest, never serialized
	PhoneNumber string `gorm:"type:varchar(20);uniqueIndex:idx_admins_phone_number;not null"` // +998XXXXXXXXX, unique
}

// Seller owns products and is the only role with a client-side session
type Seller struct {
	Base
	Email       string `gorm:"type:varchar(255);uniqueIndex:idx_sellers_email;not null"`
	Name        string `gorm:"type:varchar(255);not null"`
	Password    string `gorm:"not null" json:"-"`
	PhoneNumber string `gorm:"type:varchar(20);uniqueIndex:idx_sellers_phone_number;not null"` // stored as +<digits>
}

// Customer is a shopper account
type Customer struct {
	Base
	Email       string `gorm:"type:varchar(255);uniqueIndex:idx_customers_email;not null"`
	Name        string `gorm:"type:varchar(255);not null"`
	Password    string `gorm:"not null" json:"-"`
	PhoneNumber string `gorm:"type:varchar(20);uniqueIndex:idx_customers_phone_number;not null"` // stored as +<digits>
}

// AdminView is the public record of an Admin
type AdminView struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AccountView is the public record of a Seller or Customer
type AccountView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Identity is the minimal id/name/email triple embedded in product records
// and kept in the client-side seller session.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *Admin) Public() AdminView {
	return AdminView{
		ID:          a.ID,
		Username:    a.Username,
		PhoneNumber: a.PhoneNumber,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (s *Seller) Public() AccountView {
	return AccountView{
		ID:          s.ID,
		Email:       s.Email,
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (s *Seller) Identity() Identity {
	return Identity{ID: s.ID, Name: s.Name, Email: s.Email}
}

// Digest returns the stored password hash
func (s *Seller) Digest() string { return s.Password }

func (c *Customer) Public() AccountView {
	return AccountView{
		ID:          c.ID,
		Email:       c.Email,
		Name:        c.Name,
		PhoneNumber: c.PhoneNumber,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (c *Customer) Identity() Identity {
	return Identity{ID: c.ID, Name: c.Name, Email: c.Email}
}

func (c *Customer) Digest() string { return c.Password }
