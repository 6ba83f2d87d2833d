// product.go - Product catalogue operations and change events

package services

import (
	"context"

	"go-shop-backend/events"
	"go-shop-backend/models"
	"go-shop-backend/validation"

	"go.uber.org/zap"
)

// ProductStore is the persistence ProductService needs
type ProductStore interface {
	List(ctx context.Context) ([]models.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, id string, changes map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductService manages the catalogue and announces every change on the
// configured events.Publisher.
type ProductService struct {
	products ProductStore
	events   events.Publisher
	log      *zap.Logger
}

func NewProductService(products ProductStore, publisher events.Publisher, log *zap.Logger) *ProductService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductService{products: products, events: publisher, log: log}
}

func (s *ProductService) List(ctx context.Context) ([]models.ProductView, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return views(products), nil
}

// ListBySeller returns the products owned by sellerID
func (s *ProductService) ListBySeller(ctx context.Context, sellerID string) ([]models.ProductView, error) {
	products, err := s.products.ListBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	return views(products), nil
}

func (s *ProductService) Get(ctx context.Context, id string) (models.ProductView, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return models.ProductView{}, err
	}
	return product.Public(), nil
}

func (s *ProductService) Create(ctx context.Context, draft validation.ProductDraft) (models.ProductView, error) {
	created, err := s.products.Create(ctx, &models.Product{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       draft.Price,
		Quantity:    draft.Quantity,
		ImageURL:    draft.ImageURL,
		Category:    draft.Category,
		SellerID:    draft.SellerID,
		CustomerID:  draft.CustomerID,
	})
	if err != nil {
		return models.ProductView{}, err
	}
	view := created.Public()
	s.publish(ctx, events.ProductCreated, view)
	return view, nil
}

func (s *ProductService) Update(ctx context.Context, id string, changes validation.Changes) (models.ProductView, error) {
	updated, err := s.products.Update(ctx, id, changes)
	if err != nil {
		return models.ProductView{}, err
	}
	view := updated.Public()
	s.publish(ctx, events.ProductUpdated, view)
	return view, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, events.ProductDeleted, product.Public())
	return nil
}

// publish never fails the request; a broker outage is only logged
func (s *ProductService) publish(ctx context.Context, event events.Event, view models.ProductView) {
	if err := s.events.Publish(ctx, event, view); err != nil {
		s.log.Warn("product event not published",
			zap.String("event", string(event)),
			zap.String("product_id", view.ID),
			zap.Error(err),
		)
	}
}

func views(products []models.Product) []models.ProductView {
	out := make([]models.ProductView, 0, len(products))
	for i := range products {
		out = append(out, products[i].Public())
	}
	return out
}
