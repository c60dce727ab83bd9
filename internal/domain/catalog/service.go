// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Service owns the product catalog
type Service struct {
	mu       sync.RWMutex
	products []Product

	// Cascade hooks invoked after a product is removed. Inventory and
	// supply-chain stores register themselves here so dependent rows
	// never outlive their product.
	onDelete []func(productID string)
}

// NewService creates a new catalog service
func NewService() *Service {
	return &Service{}
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	SKU         string `json:"sku" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Unit        string `json:"unit" binding:"required"`
	Description string `json:"description"`
}

// UpdateProductRequest represents product update data
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	SKU         *string `json:"sku"`
	Category    *string `json:"category"`
	Unit        *string `json:"unit"`
	Description *string `json:"description"`
}

// OnDelete registers a cascade hook that runs whenever a product is deleted
func (s *Service) OnDelete(fn func(productID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDelete = append(s.onDelete, fn)
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.products {
		if p.SKU == req.SKU {
			return nil, fmt.Errorf("product with SKU '%s' already exists", req.SKU)
		}
	}

	now := time.Now().UTC()
	product := Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		SKU:         req.SKU,
		Category:    req.Category,
		Unit:        req.Unit,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.products = append(s.products, product)

	return &product, nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id string, req *UpdateProductRequest) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.SKU != nil {
		for _, p := range s.products {
			if p.ID != id && p.SKU == *req.SKU {
				return nil, fmt.Errorf("product with SKU '%s' already exists", *req.SKU)
			}
		}
	}

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.SKU != nil {
			p.SKU = *req.SKU
		}
		if req.Category != nil {
			p.Category = *req.Category
		}
		if req.Unit != nil {
			p.Unit = *req.Unit
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		p.UpdatedAt = time.Now().UTC()
		updated := *p
		return &updated, nil
	}

	return nil, fmt.Errorf("product not found")
}

// DeleteProduct deletes a product and cascades removal of dependent records
func (s *Service) DeleteProduct(id string) error {
	s.mu.Lock()

	found := false
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	s.products = kept
	hooks := s.onDelete
	s.mu.Unlock()

	if !found {
		return fmt.Errorf("product not found")
	}

	// Hooks run outside the catalog lock; each dependent store takes its own.
	for _, fn := range hooks {
		fn(id)
	}

	return nil
}

// GetProduct retrieves a product by id
func (s *Service) GetProduct(id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, fmt.Errorf("product not found")
}

// ListProducts returns all products in catalog order
func (s *Service) ListProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// Exists reports whether a product with the given id is in the catalog
func (s *Service) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// Count returns the number of products in the catalog
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// Restore installs a product with a caller-provided identity. Used by seeding.
func (s *Service) Restore(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}
