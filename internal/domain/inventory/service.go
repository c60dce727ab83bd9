// internal/domain/inventory/service.go
package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/logistics-backend/internal/domain/supplychain"
)

// CatalogSource exposes the catalog reads the ledger depends on
type CatalogSource interface {
	Exists(id string) bool
	Count() int
}

// ShipmentSource exposes supply-chain status counts for dashboard stats
type ShipmentSource interface {
	CountByStatus(status supplychain.ShipmentStatus) int
}

// Service owns per-product stock records and derives warehouse reports
// and dashboard statistics from them
type Service struct {
	mu    sync.RWMutex
	items []Item

	catalog   CatalogSource
	shipments ShipmentSource
}

// NewService creates a new inventory ledger
func NewService(catalog CatalogSource, shipments ShipmentSource) *Service {
	return &Service{
		catalog:   catalog,
		shipments: shipments,
	}
}

// CreateItemRequest represents inventory item creation data
type CreateItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location" binding:"required"`
	MinStock  int    `json:"min_stock"`
	MaxStock  int    `json:"max_stock"`
}

// UpdateItemRequest represents inventory item update data
type UpdateItemRequest struct {
	Quantity *int    `json:"quantity"`
	Location *string `json:"location"`
	MinStock *int    `json:"min_stock"`
	MaxStock *int    `json:"max_stock"`
}

// Add creates a stock record for a product
func (s *Service) Add(req *CreateItemRequest) (*Item, error) {
	if s.catalog != nil && !s.catalog.Exists(req.ProductID) {
		return nil, fmt.Errorf("product not found")
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:          uuid.NewString(),
		ProductID:   req.ProductID,
		Quantity:    req.Quantity,
		Location:    req.Location,
		MinStock:    req.MinStock,
		MaxStock:    req.MaxStock,
		LastUpdated: time.Now().UTC(),
	}
	s.items = append(s.items, item)

	return &item, nil
}

// Update patches a stock record and refreshes LastUpdated
func (s *Service) Update(id string, req *UpdateItemRequest) (*Item, error) {
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		item := &s.items[i]
		if req.Quantity != nil {
			item.Quantity = *req.Quantity
		}
		if req.Location != nil {
			item.Location = *req.Location
		}
		if req.MinStock != nil {
			item.MinStock = *req.MinStock
		}
		if req.MaxStock != nil {
			item.MaxStock = *req.MaxStock
		}
		item.LastUpdated = time.Now().UTC()
		updated := *item
		return &updated, nil
	}

	return nil, fmt.Errorf("inventory item not found")
}

// Get retrieves a stock record by id
func (s *Service) Get(id string) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, fmt.Errorf("inventory item not found")
}

// Delete removes a single stock record
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("inventory item not found")
}

// RemoveByProduct drops all stock records for a product. Cascade target
// registered with the catalog.
func (s *Service) RemoveByProduct(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
}

// List returns all stock records
func (s *Service) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// WarehouseReports derives the stock-health report for every item.
// Recomputed on every call so it always reflects the latest mutation.
func (s *Service) WarehouseReports() []Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports := make([]Report, 0, len(s.items))
	for _, item := range s.items {
		reports = append(reports, Report{
			ID:           item.ID,
			ProductID:    item.ProductID,
			CurrentStock: item.Quantity,
			MinStock:     item.MinStock,
			MaxStock:     item.MaxStock,
			Status:       item.Classify(),
			Location:     item.Location,
			LastMovement: item.LastUpdated,
		})
	}
	return reports
}

// DashboardStats folds catalog, inventory and supply-chain state into the
// dashboard numbers
func (s *Service) DashboardStats() Stats {
	reports := s.WarehouseReports()

	s.mu.RLock()
	totalQuantity := 0
	for _, item := range s.items {
		totalQuantity += item.Quantity
	}
	s.mu.RUnlock()

	lowOrOut := 0
	for _, r := range reports {
		if r.Status == StatusLowStock || r.Status == StatusOutOfStock {
			lowOrOut++
		}
	}

	stats := Stats{
		TotalInventoryValue: totalQuantity,
		LowStockItems:       lowOrOut,
	}
	if s.catalog != nil {
		stats.TotalProducts = s.catalog.Count()
	}
	if s.shipments != nil {
		stats.PendingOrders = s.shipments.CountByStatus(supplychain.StatusPending)
		stats.InTransitOrders = s.shipments.CountByStatus(supplychain.StatusInTransit)
		stats.DeliveredOrders = s.shipments.CountByStatus(supplychain.StatusDelivered)
	}
	return stats
}

// Restore installs a stock record with a caller-provided identity. Used by seeding.
func (s *Service) Restore(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}
