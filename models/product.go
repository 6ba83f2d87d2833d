// product.go - Defines the Product model and its public view

package models

import "time"

// Product is a catalogue entry. Seller and customer references are optional
// and independent of each other.
type Product struct {
	Base
	Name        string  `gorm:"type:varchar(255);not null"`
	Description string  `gorm:"type:text;not null"`
	Price       float64 `gorm:"not null"`
	Quantity    int     `gorm:"not null"`
	ImageURL    string  `gorm:"column:image_url;type:varchar(2048);not null"`
	Category    string  `gorm:"type:varchar(255);not null"`

	SellerID   *string   `gorm:"type:varchar(36);index"`
	Seller     *Seller   `gorm:"foreignKey:SellerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	CustomerID *string   `gorm:"type:varchar(36);index"`
	Customer   *Customer `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
}

// ProductView is the JSON shape of a product, with the owners reduced to
// their identity.
type ProductView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	SellerID    *string   `json:"sellerId"`
	CustomerID  *string   `json:"customerId"`
	Seller      *Identity `json:"seller"`
	Customer    *Identity `json:"customer"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (p *Product) Public() ProductView {
	v := ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		SellerID:    p.SellerID,
		CustomerID:  p.CustomerID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.Seller != nil {
		id := p.Seller.Identity()
		v.Seller = &id
	}
	if p.Customer != nil {
		id := p.Customer.Identity()
		v.Customer = &id
	}
	return v
}
