// product.go - Product request rules

package validation

import "strings"

var productMessages = map[string]string{
	"name":        "Name is required",
	"description": "Description is required",
	"price":       "Price must be a valid non-negative number",
	"quantity":    "Quantity must be a valid non-negative integer",
	"imageUrl":    "Image URL must be a valid URL",
	"category":    "Category is required",
}

// ProductCreateInput is the body of POST /api/product. Price and quantity
// may be numbers or numeric strings.
type ProductCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       Number `json:"price" validate:"required,nonneg_decimal"`
	Quantity    Number `json:"quantity" validate:"required,nonneg_integer"`
	ImageURL    string `json:"imageUrl" validate:"required,url"`
	Category    string `json:"category" validate:"required"`
	SellerID    string `json:"sellerId" validate:"-"`
	CustomerID  string `json:"customerId" validate:"-"`
}

// ProductUpdateInput is the body of PATCH /api/product/:id. Ownership cannot
// be changed through it.
type ProductUpdateInput struct {
	Name        *string `json:"name" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty"`
	Price       Number  `json:"price" validate:"omitempty,nonneg_decimal"`
	Quantity    Number  `json:"quantity" validate:"omitempty,nonneg_integer"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	Category    *string `json:"category" validate:"omitempty"`
}

// ProductDraft is a validated product create request
type ProductDraft struct {
	Name        string
	Description string
	Price       float64
	Quantity    int
	ImageURL    string
	Category    string
	SellerID    *string
	CustomerID  *string
}

func (v *Validator) ProductCreate(in ProductCreateInput) (ProductDraft, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.Category = strings.TrimSpace(in.Category)

	if err := v.check(in, productMessages); err != nil {
		return ProductDraft{}, err
	}

	price, _ := parseDecimal(string(in.Price))
	quantity, _ := parseInteger(string(in.Quantity))
	return ProductDraft{
		Name:        in.Name,
		Description: in.Description,
		Price:       price,
		Quantity:    quantity,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		SellerID:    optionalID(in.SellerID),
		CustomerID:  optionalID(in.CustomerID),
	}, nil
}

func (v *Validator) ProductUpdate(in ProductUpdateInput) (Changes, error) {
	in.Name = trimmed(in.Name)
	in.Description = trimmed(in.Description)
	in.ImageURL = trimmed(in.ImageURL)
	in.Category = trimmed(in.Category)

	if err := v.check(in, productMessages); err != nil {
		return nil, err
	}

	changes := Changes{}
	if present(in.Name) {
		changes["name"] = *in.Name
	}
	if present(in.Description) {
		changes["description"] = *in.Description
	}
	if in.Price != "" {
		price, _ := parseDecimal(string(in.Price))
		changes["price"] = price
	}
	if in.Quantity != "" {
		quantity, _ := parseInteger(string(in.Quantity))
		changes["quantity"] = quantity
	}
	if present(in.ImageURL) {
		changes["image_url"] = *in.ImageURL
	}
	if present(in.Category) {
		changes["category"] = *in.Category
	}
	return changes, nil
}

func optionalID(id string) *string {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	return &id
}
